package middleware

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct tags and flattens failures into the
// field->message map used by ValidationErrorResponse. Nil means valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["payload"] = "Invalid request body!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", fieldErr.Field())
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", fieldErr.Field(), fieldErr.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long!", fieldErr.Field(), fieldErr.Param())
		case "email":
			errors[field] = "Invalid email format!"
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", fieldErr.Field(), fieldErr.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s!", fieldErr.Field(), fieldErr.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must be at most %s!", fieldErr.Field(), fieldErr.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", fieldErr.Field())
		}
	}
	return errors
}
