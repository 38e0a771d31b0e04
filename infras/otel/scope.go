package otel

import (
	"errors"
	"fmt"
	"net/http"

	"bookspace/shared/constant"
	"bookspace/shared/failure"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{span: span}
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError records err on the span. A rejection by the booking API also
// tags the span with the failed call, and only answers of 5xx mark the span
// as failed: a 4xx is the user's input being refused.
func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)

	var apiErr *failure.APIError
	if errors.As(err, &apiErr) {
		s.span.SetAttributes(
			attribute.String(constant.OtelMethodAttributeKey, apiErr.Method),
			attribute.String(constant.OtelPathAttributeKey, apiErr.Path),
			attribute.Int(constant.OtelStatusAttributeKey, apiErr.StatusCode),
		)

		if apiErr.StatusCode < http.StatusInternalServerError {
			return
		}
	}

	var invalid *failure.InvalidResponse
	if errors.As(err, &invalid) {
		s.span.SetAttributes(attribute.String(constant.OtelPathAttributeKey, invalid.Path))
	}

	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.TraceError(err)
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		kvs = append(kvs, toAttribute(key, value))
	}

	s.span.SetAttributes(kvs...)
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case uint64:
		return attribute.Int64(key, int64(v)) //nolint:gosec
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
