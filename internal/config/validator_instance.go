package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/retrowire/termframe/internal/ansi"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	screenIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("screen_id", func(fl validator.FieldLevel) bool {
			return screenIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return ansi.IsColorName(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}
