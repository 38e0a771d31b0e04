package history

import (
	"net/http"

	"bookspace/config"
	"bookspace/infras/otel"
	"bookspace/internal/domains/booking/model"
	"bookspace/internal/domains/history/service"
	"bookspace/internal/view"
	"bookspace/shared/constant"
	"bookspace/shared/failure"
	gDto "bookspace/shared/dto"
	"bookspace/shared/logger"
	"bookspace/transport/http/render"

	"github.com/go-chi/chi/v5"
)

const messageEmpty = "No booking requests match the filters."

type Handler struct {
	service service.History
	render  *render.Renderer
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.History, renderer *render.Renderer, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		render:  renderer,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(model.HistoryPath, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHistories)
	})
}

// GetHistories renders the filterable booking history. The page script asks
// for the rows fragment alone while the user types, sending the filter the
// rows were rendered with next to the new one so a changed filter starts
// again from page 1. An unknown status is passed through for the API to
// answer.
func (handler *Handler) GetHistories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistories")
	defer scope.End()

	base := gDto.QueryParams{PageSize: handler.cfg.API.PageSize}
	base.FromRequest(r, true)
	filter := base.Filter

	if current, ok := currentFilter(r); ok {
		base.Filter = current
	}

	list := view.NewList(base, model.ID)
	if list.ApplyFilter(filter) {
		scope.AddEvent("filter changed")
	}

	query := list.Query()
	scope.SetAttributes(map[string]any{
		"page":   query.Page,
		"search": query.Search,
		"status": query.Status,
	})

	if query.Status != constant.DefaultValueStatus && !model.IsKnownStatus(query.Status) {
		logger.Ctx(ctx).Debug().Str("status", query.Status).Msg("unknown status filter")
	}

	status := http.StatusOK
	if err := list.Load(ctx, handler.service.GetAll); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("status", query.Status).Msg("failed to get histories")

		status = failure.GetCode(err)
	}

	table := &render.Table[model.Booking]{
		Path:  model.HistoryPath,
		List:  list,
		Empty: messageEmpty,
	}

	if seq, ok := render.RowsRequest(r); ok {
		handler.render.Rows(w, r, status, render.PageHistoryList, seq, table)

		return
	}

	table.OpenDialogs(r)

	handler.render.Page(w, r, status, render.Page{
		Name:    render.PageHistoryList,
		Title:   "History",
		Active:  model.HistoryPath,
		Content: table,
	})
}

// currentFilter reads the filter the displayed rows were rendered with.
func currentFilter(r *http.Request) (gDto.Filter, bool) {
	values := r.URL.Query()
	if !values.Has(constant.RequestParamCurrentSearch) && !values.Has(constant.RequestParamCurrentStatus) {
		return gDto.Filter{}, false
	}

	current := gDto.Filter{
		Search: values.Get(constant.RequestParamCurrentSearch),
		Status: values.Get(constant.RequestParamCurrentStatus),
	}
	if current.Status == "" {
		current.Status = constant.DefaultValueStatus
	}

	return current, true
}
