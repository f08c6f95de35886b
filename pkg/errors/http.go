package errors

import "net/http"

type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError builds an error with an application code; StatusCode defaults to 400 when 0.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewBadRequestError(code int, message string) *HTTPError {
	return NewHTTPError(code, message, http.StatusBadRequest)
}

func (e HTTPError) Error() string {
	return e.Message
}
