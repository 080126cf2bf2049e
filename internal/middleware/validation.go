package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct validates a request body against its validate tags
// and returns an ErrValidationFailed wrapping a readable message.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, formatValidationError(validationErrors[0]))
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
