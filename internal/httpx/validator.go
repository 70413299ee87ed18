package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateStruct checks struct tags and returns one detail per failing field.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, fe := range validationErrors {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required", "notblank":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}

// ValidationMessage joins the detail messages into the single line the error body carries.
func ValidationMessage(details []ErrorDetail) string {
	messages := make([]string, 0, len(details))
	for _, d := range details {
		messages = append(messages, d.Message)
	}
	return strings.Join(messages, ", ")
}
