package dialog

import (
	"github.com/go-playground/validator/v10"
)

type validatable interface {
	Valid() bool
}

// NewValidator returns a validator that also understands the "enum" tag,
// which accepts any value whose Valid method reports true.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(validatable)
		return ok && e.Valid()
	})
	return v
}
