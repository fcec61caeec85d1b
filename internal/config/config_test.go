// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
app:
  name: principal-lookup-test
database:
  username: lookup
  password: lookup
  dbname: identity
`

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, minimalConfig)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	assert.Equal(t, DefUsersByUsernameQuery, cfg.Lookup.UsersByUsernameQuery)
	assert.Equal(t, DefUsersByEmailQuery, cfg.Lookup.UsersByEmailQuery)
	assert.Equal(t, DefAuthoritiesByUsernameQuery, cfg.Lookup.AuthoritiesByUsernameQuery)
	assert.Equal(t, "", cfg.Lookup.RolePrefix)
	assert.True(t, cfg.Lookup.UsernameBasedPrimaryKey)
}

func TestLoadConfigLookupOverrides(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, minimalConfig+`
lookup:
  users_by_username_query: "SELECT login AS username, pw AS password, mail AS email, active AS enabled FROM accounts WHERE login = ?"
  role_prefix: "ROLE_"
  username_based_primary_key: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Contains(t, cfg.Lookup.UsersByUsernameQuery, "FROM accounts")
	assert.Equal(t, "ROLE_", cfg.Lookup.RolePrefix)
	assert.False(t, cfg.Lookup.UsernameBasedPrimaryKey)
	// untouched queries keep their defaults
	assert.Equal(t, DefUsersByEmailQuery, cfg.Lookup.UsersByEmailQuery)
}

func TestLoadConfigRejectsEmptyLookupQuery(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, minimalConfig+`
lookup:
  authorities_by_username_query: ""
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorities-by-username")
}

func TestLoadConfigRejectsMissingAppName(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
database:
  username: lookup
  password: lookup
  dbname: identity
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app name")
}
