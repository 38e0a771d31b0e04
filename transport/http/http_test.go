package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookspace/config"
	"bookspace/infras/otel/mocks"
	dashboardMocks "bookspace/internal/domains/dashboard/mocks"
	"bookspace/internal/domains/dashboard/model"
	"bookspace/internal/handlers/dashboard"
	"bookspace/shared/cache"
	"bookspace/shared/constant"
	transport "bookspace/transport/http"
	"bookspace/transport/http/middleware"
	"bookspace/transport/http/render"
	"bookspace/transport/http/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *dashboardMocks.MockDashboardService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := dashboardMocks.NewMockDashboardService(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	ot := mocks.NewOtel()

	renderer, err := render.Parse()
	require.NoError(t, err)

	r := router.New(
		router.DomainHandlers{Dashboard: dashboard.New(svc, renderer, ot)},
		middleware.NewAppMiddleware(ot, cfg, cache.NewRedisCache(client, ot)),
	)

	return transport.New(cfg, r, ot), svc
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_ServesPagesWithRequestID(t *testing.T) {
	server, svc := newServer(t)

	svc.EXPECT().Get(gomock.Any()).Return(model.Stat{TotalRooms: 1}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
	assert.Contains(t, rec.Body.String(), "Total Rooms")
}

func TestHTTP_NotFound(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
