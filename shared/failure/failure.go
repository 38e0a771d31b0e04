package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidIDParam = &Failure{Code: http.StatusBadRequest, Message: "invalid id parameter"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	var invalid *InvalidResponse
	if errors.As(err, &invalid) {
		return http.StatusBadGateway
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Problem is the error payload returned by the booking API.
// Errors is keyed by the server-side field name, e.g. "Name" or "RoomId".
type Problem struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// FieldError returns the first message reported for field, or an empty string.
func (p *Problem) FieldError(field string) string {
	if p == nil {
		return ""
	}

	if messages := p.Errors[field]; len(messages) > 0 {
		return messages[0]
	}

	return ""
}

// APIError is a non-2xx answer from the booking API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Problem    *Problem
}

func (e *APIError) Error() string {
	if e.Problem != nil && e.Problem.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Problem.Message)
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// AsProblem extracts the decoded error payload of an APIError anywhere in the chain.
func AsProblem(err error) (*Problem, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Problem != nil {
		return apiErr.Problem, true
	}

	return nil, false
}

// InvalidResponse is returned when a 2xx body does not match the expected schema.
type InvalidResponse struct {
	Path   string
	Reason string
}

func (e *InvalidResponse) Error() string {
	return fmt.Sprintf("invalid response from %s: %s", e.Path, e.Reason)
}
