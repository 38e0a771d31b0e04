package api

//go:generate go run go.uber.org/mock/mockgen -source=./api.go -destination=./mocks/api_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookspace/config"
	"bookspace/infras/otel"
	"bookspace/shared/constant"
	"bookspace/shared/failure"
	"bookspace/shared/logger"
	"bookspace/shared/validator"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBodyBytes = 64 << 10

// Client talks JSON to the booking API. Responses are decoded into out and
// validated against its `validate` tags; a nil out discards the body.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := constant.DefaultRequestTimeout
	if cfg.API.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return NewWithHTTPClient(cfg.API.BaseURL, httpClient, ot)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, ot otel.Otel) Client {
	return &clientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		otel:    ot,
	}
}

func (c *clientImpl) Get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}

	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *clientImpl) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelMethodAttributeKey: method,
		constant.OtelPathAttributeKey:   path,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		req.Header.Set(constant.RequestHeaderRequestID, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("method", method).Str("path", path).Msg("request to booking api failed")

		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(constant.OtelStatusAttributeKey, resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &failure.APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Problem:    decodeProblem(resp.Body),
		}

		logger.Ctx(ctx).Warn().Err(apiErr).Int("status", resp.StatusCode).Msg("booking api returned an error")

		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err = validator.Decode(resp.Body, path, out); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("unexpected response shape from booking api")

		return err //nolint:wrapcheck
	}

	return nil
}

// decodeProblem reads the error payload; bodies that are not a problem document yield nil.
func decodeProblem(body io.Reader) *failure.Problem {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var problem failure.Problem
	if err := json.Unmarshal(raw, &problem); err != nil {
		return nil
	}

	if problem.Errors == nil && problem.Message == "" {
		return nil
	}

	return &problem
}
