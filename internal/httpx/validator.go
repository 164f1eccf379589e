package httpx

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validates a request payload and maps each failed rule
// onto a response-ready detail.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, fe.Param())
		case "gte":
			message = fmt.Sprintf("%s must be >= %s", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}
