// Package response writes the JSON answers of the few non-page endpoints:
// health, the rate limiter and malformed route parameters. The envelope
// mirrors the booking API's own error payload.
package response

import (
	"encoding/json"
	"net/http"

	"bookspace/shared/constant"
	"bookspace/shared/failure"
	"bookspace/shared/logger"
)

type Body struct {
	Data      any                 `json:"data,omitempty"`
	Message   string              `json:"message,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Body{Data: payload})
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Body{Message: message})
}

// WithError answers with the status carried by err. A problem reported by
// the booking API is passed on with its field errors.
func WithError(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)

	body := Body{Message: err.Error(), RequestID: requestID}
	if problem, ok := failure.AsProblem(err); ok {
		if problem.Message != "" {
			body.Message = problem.Message
		}

		body.Errors = problem.Errors
	}

	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		logger.Ctx(ctx).Error().Err(err).Int("status", code).Str("path", request.URL.Path).Msg("request failed")
	}

	write(writer, code, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, body Body) {
	payload, err := json.Marshal(body)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}
