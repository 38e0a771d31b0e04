package response_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookspace/shared/constant"
	"bookspace/shared/failure"
	"bookspace/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectBody string
	}{
		{
			name:       "invalid id",
			err:        failure.InvalidIDParam,
			expectCode: http.StatusBadRequest,
			expectBody: `{"message":"invalid id parameter","requestId":"req-1"}`,
		},
		{
			name: "api problem",
			err: fmt.Errorf("creating room: %w", &failure.APIError{
				StatusCode: http.StatusUnprocessableEntity,
				Method:     http.MethodPost,
				Path:       "/rooms",
				Problem: &failure.Problem{
					Message: "Validation failed",
					Errors:  map[string][]string{"Name": {"Name is required"}},
				},
			}),
			expectCode: http.StatusUnprocessableEntity,
			expectBody: `{"message":"Validation failed","errors":{"Name":["Name is required"]},"requestId":"req-1"}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			expectCode: http.StatusInternalServerError,
			expectBody: `{"message":"boom","requestId":"req-1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/rooms/abc/delete", nil)
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyRequestID, "req-1"))
			rec := httptest.NewRecorder()

			response.WithError(rec, req, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.JSONEq(t, tt.expectBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		expectCode int
		expectMsg  string
	}{
		{name: "limit", write: response.WithRequestLimitExceeded, expectCode: http.StatusTooManyRequests, expectMsg: constant.ResponseErrorRequestLimitExceeded},
		{name: "shutdown", write: response.WithPreparingShutdown, expectCode: http.StatusServiceUnavailable, expectMsg: constant.ResponseErrorPrepareShutdown},
		{name: "unhealthy", write: response.WithUnhealthy, expectCode: http.StatusServiceUnavailable, expectMsg: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.expectMsg), rec.Body.String())
		})
	}
}
