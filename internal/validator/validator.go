package validator

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired       = "is required"
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrOneOf          = "must be one of: %s"
	ErrPersonName     = "must contain only letters and spaces"
	ErrDefaultInvalid = "is invalid"
)

var personNameRgx = regexp.MustCompile(`^[a-zA-Z ]+$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("person_name", validatePersonName)

	return validator
}

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min", "gte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max", "lte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "person_name":
		return ErrPersonName
	default:
		return ErrDefaultInvalid
	}
}
