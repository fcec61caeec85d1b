// internal/router/validator.go
package router

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func registerValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("principalname", principalNameValidator)
	}
}

// Usernames are a lookup key, not free text: letters, digits, dot, dash,
// underscore and @, 1-255 characters.
var principalNameRe = regexp.MustCompile(`^[a-zA-Z0-9._@-]{1,255}$`)

func principalNameValidator(fl validator.FieldLevel) bool {
	return principalNameRe.MatchString(fl.Field().String())
}
