package common

// ErrorResponse is the standard single-message error payload
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries field-level validation messages
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
