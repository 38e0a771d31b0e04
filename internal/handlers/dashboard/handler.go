package dashboard

import (
	"net/http"

	"bookspace/infras/otel"
	"bookspace/internal/domains/dashboard/model"
	"bookspace/internal/domains/dashboard/service"
	"bookspace/shared/constant"
	"bookspace/shared/failure"
	"bookspace/shared/logger"
	"bookspace/transport/http/render"

	"github.com/go-chi/chi/v5"
)

const homePath = "/"

type Card struct {
	Title string
	Value int
}

type page struct {
	Banner string
	Cards  []Card
}

type Handler struct {
	service service.Dashboard
	render  *render.Renderer
	otel    otel.Otel
}

func New(service service.Dashboard, renderer *render.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		render:  renderer,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(homePath, handler.GetDashboard)
	router.Get(model.Path, handler.GetDashboard)
}

// GetDashboard renders the three counters. When the stats cannot be loaded the
// cards show zero under an error banner.
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	stat, err := handler.service.Get(ctx)

	data := page{Cards: cards(stat)}
	status := http.StatusOK

	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get dashboard")

		data.Banner = constant.MessageDashboardFailed
		status = failure.GetCode(err)
	}

	handler.render.Page(w, r, status, render.Page{
		Name:    render.PageDashboard,
		Title:   "Dashboard",
		Active:  homePath,
		Content: data,
	})
}

func cards(stat model.Stat) []Card {
	return []Card{
		{Title: "Total Rooms", Value: stat.TotalRooms},
		{Title: "Bookings Today", Value: stat.BookingsToday},
		{Title: "Pending Requests", Value: stat.PendingRequests},
	}
}
