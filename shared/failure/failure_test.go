package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bookspace/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidIDParam",
			failure: failure.InvalidIDParam,
			code:    http.StatusBadRequest,
			message: "invalid id parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("API.BaseURL must be a valid URL")

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}
	if err.Error() != "API.BaseURL must be a valid URL" {
		t.Errorf("unexpected message %s", err.Error())
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure",
			err:      failure.InvalidIDParam,
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("parsing room id: %w", failure.InvalidIDParam),
			expected: http.StatusBadRequest,
		},
		{
			name:     "api error keeps upstream status",
			err:      fmt.Errorf("create room: %w", &failure.APIError{StatusCode: http.StatusConflict}),
			expected: http.StatusConflict,
		},
		{
			name:     "invalid response",
			err:      &failure.InvalidResponse{Path: "/rooms", Reason: "missing total"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestProblem_FieldError(t *testing.T) {
	problem := &failure.Problem{
		Errors: map[string][]string{
			"Name":     {"required", "too short"},
			"Capacity": {},
		},
	}

	if got := problem.FieldError("Name"); got != "required" {
		t.Errorf("expected first message 'required', got %q", got)
	}
	if got := problem.FieldError("Capacity"); got != "" {
		t.Errorf("expected empty message for empty list, got %q", got)
	}
	if got := problem.FieldError("Location"); got != "" {
		t.Errorf("expected empty message for missing field, got %q", got)
	}

	var nilProblem *failure.Problem
	if got := nilProblem.FieldError("Name"); got != "" {
		t.Errorf("expected empty message for nil problem, got %q", got)
	}
}

func TestAsProblem(t *testing.T) {
	problem := &failure.Problem{Message: "Room is booked"}
	err := fmt.Errorf("create booking: %w", &failure.APIError{
		StatusCode: http.StatusBadRequest,
		Method:     http.MethodPost,
		Path:       "/bookings",
		Problem:    problem,
	})

	got, ok := failure.AsProblem(err)
	if !ok || got != problem {
		t.Fatalf("expected problem to be extracted, got %v, %v", got, ok)
	}

	if _, ok := failure.AsProblem(errors.New("dial tcp: refused")); ok {
		t.Error("expected no problem for a transport error")
	}

	if _, ok := failure.AsProblem(&failure.APIError{StatusCode: http.StatusInternalServerError}); ok {
		t.Error("expected no problem for an api error without payload")
	}
}

func TestAPIError_Error(t *testing.T) {
	withMessage := &failure.APIError{
		StatusCode: http.StatusBadRequest,
		Method:     http.MethodPost,
		Path:       "/bookings",
		Problem:    &failure.Problem{Message: "Room is booked"},
	}
	if withMessage.Error() != "POST /bookings: 400: Room is booked" {
		t.Errorf("unexpected error string %q", withMessage.Error())
	}

	withoutMessage := &failure.APIError{
		StatusCode: http.StatusNotFound,
		Method:     http.MethodGet,
		Path:       "/rooms/9",
	}
	if withoutMessage.Error() != "GET /rooms/9: 404 Not Found" {
		t.Errorf("unexpected error string %q", withoutMessage.Error())
	}
}
