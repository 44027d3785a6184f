package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their json names so error messages match the wire shape
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationError maps the first validation failure to a caller-facing
// message. Nested address/location failures get their own messages; top-level
// fields short-circuit with the field name.
func (cv *CustomValidator) FormatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Invalid request"
	}

	e := validationErrors[0]
	namespace := e.Namespace()
	switch {
	case strings.Contains(namespace, ".address"):
		return "Missing or invalid address information"
	case strings.Contains(namespace, ".location"):
		return "Missing or invalid location information"
	case e.Tag() == "required":
		return "Missing required field: " + e.Field()
	default:
		return "Invalid value for field: " + e.Field()
	}
}
