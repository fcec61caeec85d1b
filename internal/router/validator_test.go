// internal/router/validator_test.go
package router

import "testing"

func TestPrincipalNamePattern(t *testing.T) {
	valid := []string{"alice", "bob-2", "j.doe", "a_b", "alice@example.com"}
	for _, name := range valid {
		if !principalNameRe.MatchString(name) {
			t.Errorf("expected %q to be a valid principal name", name)
		}
	}

	invalid := []string{"", "bad name", "semi;colon", "slash/y", "tab\tchar"}
	for _, name := range invalid {
		if principalNameRe.MatchString(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
