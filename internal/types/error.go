package types

import "fmt"

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Field   string `json:"field,omitempty"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// FieldError builds a 400 validation error scoped to a single input field.
func FieldError(field, message string) *CustomError {
	return &CustomError{
		Code:    400,
		Message: message,
		Type:    "validation.field",
		Field:   field,
	}
}
