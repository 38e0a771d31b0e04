package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookspace/infras/otel/mocks"
	dashboardMocks "bookspace/internal/domains/dashboard/mocks"
	"bookspace/internal/domains/dashboard/model"
	"bookspace/internal/handlers/dashboard"
	"bookspace/shared/constant"
	"bookspace/shared/failure"
	"bookspace/transport/http/render"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *dashboardMocks.MockDashboardService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := dashboardMocks.NewMockDashboardService(ctrl)

	renderer, err := render.Parse()
	require.NoError(t, err)

	handler := dashboard.New(svc, renderer, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetDashboard(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Get(gomock.Any()).Return(model.Stat{TotalRooms: 12, BookingsToday: 3, PendingRequests: 5}, nil).Times(1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Overview room booking system")
	assert.Contains(t, body, `aria-current="page">Dashboard</a>`)
	assert.Contains(t, body, `<h3 class="text-3xl font-bold mt-2">12</h3>`)
	assert.Contains(t, body, `<h3 class="text-3xl font-bold mt-2">3</h3>`)
	assert.Contains(t, body, `<h3 class="text-3xl font-bold mt-2">5</h3>`)
	assert.NotContains(t, body, `role="alert"`)
}

func TestHandler_GetDashboard_Error(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Get(gomock.Any()).Return(model.Stat{}, &failure.InvalidResponse{Path: "/dashboard", Reason: "missing totalRooms"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, constant.MessageDashboardFailed)
	assert.Contains(t, body, `data-card="Pending Requests"`)
	assert.Contains(t, body, `<h3 class="text-3xl font-bold mt-2">0</h3>`)
}
