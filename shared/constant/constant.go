package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage     = "page"
	RequestParamPageSize = "pageSize"
	RequestParamSearch   = "search"
	RequestParamStatus   = "status"
	RequestParamDetail   = "detail"
	RequestParamDelete   = "delete"
	RequestParamPartial  = "partial"
	RequestParamSeq      = "seq"
)

// The filters the displayed rows were loaded with, sent by the rows refresh.
const (
	RequestParamCurrentSearch = "currentSearch"
	RequestParamCurrentStatus = "currentStatus"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage          = 1
	DefaultValuePageSize      = 8
	DefaultValueReferenceSize = 100
	DefaultValueStatus        = "All"
)

const (
	// ISOFormat mirrors the browser's Date.prototype.toISOString output.
	ISOFormat = "2006-01-02T15:04:05.000Z"
	// DateTimeLocalFormat is the value format of an <input type="datetime-local">.
	DateTimeLocalFormat = "2006-01-02T15:04"
	DisplayFormat       = "2 Jan 2006, 15:04"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"

	OtelPathAttributeKey   = "api.path"
	OtelMethodAttributeKey = "api.method"
	OtelStatusAttributeKey = "api.status_code"
)

const (
	RequestHeaderAccept             = "Accept"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderViewSeq            = "X-View-Seq"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	MessageFallback        = "An error occurred. Please try again."
	MessageLoadFailed      = "Could not load data from the server. Please try again."
	MessageLoadKept        = "Could not load data from the server. Showing the last loaded results."
	MessageDashboardFailed = "Could not load dashboard data."
	MessageRoomsFailed     = "Could not load room options."
	MessageButtonSave      = "Save"
	MessageButtonSaving    = "Saving..."
	MessageNotAvailable    = "-"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)

const (
	DefaultRequestTimeout = 10 * time.Second
)
