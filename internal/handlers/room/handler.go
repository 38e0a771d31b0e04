package room

import (
	"context"
	"net/http"
	"strconv"

	"bookspace/config"
	"bookspace/infras/otel"
	"bookspace/internal/domains/room/model"
	"bookspace/internal/domains/room/model/dto"
	"bookspace/internal/domains/room/service"
	"bookspace/internal/view"
	"bookspace/shared"
	"bookspace/shared/constant"
	"bookspace/shared/failure"
	gDto "bookspace/shared/dto"
	"bookspace/shared/logger"
	"bookspace/transport/http/render"
	"bookspace/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	titleCreate  = "Add New Room"
	titleEdit    = "Edit Room"
	messageEmpty = "No rooms found."
)

type Handler struct {
	service service.Room
	render  *render.Renderer
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Room, renderer *render.Renderer, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		render:  renderer,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(model.Path, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/create", handler.CreateRoomForm)
		routerGroup.Post("/create", handler.CreateRoom)
		routerGroup.Get("/edit/{id}", handler.EditRoomForm)
		routerGroup.Post("/edit/{id}", handler.UpdateRoom)
		routerGroup.Post("/{id}/delete", handler.DeleteRoom)
	})
}

// GetRooms renders one page of rooms. The detail and delete dialogs are
// opened from the `detail` and `delete` query parameters.
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	table, err := handler.load(ctx, handler.listQuery(r))

	status := http.StatusOK
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get rooms")

		status = failure.GetCode(err)
	}

	if seq, ok := render.RowsRequest(r); ok {
		handler.render.Rows(w, r, status, render.PageRoomList, seq, table)

		return
	}

	table.OpenDialogs(r)

	handler.page(w, r, status, table)
}

func (handler *Handler) CreateRoomForm(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomForm")
	defer scope.End()

	handler.form(w, r, http.StatusOK, formPage{
		Title:  titleCreate,
		Action: model.Path + "/create",
		Form:   view.NewForm(model.Fields...),
	})
}

func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var input dto.RoomForm
	input.FromRequest(r)

	form := view.NewForm(model.Fields...)
	form.SetValues(input.Values())
	form.Begin()

	if err := handler.service.Create(ctx, input.ToRequest()); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create room")

		form.Fail(err)
		handler.form(w, r, http.StatusUnprocessableEntity, formPage{
			Title:  titleCreate,
			Action: model.Path + "/create",
			Form:   form,
		})

		return
	}

	form.Succeed()
	scope.AddEvent("Room created successfully")

	http.Redirect(w, r, model.Path, http.StatusSeeOther)
}

func (handler *Handler) EditRoomForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditRoomForm")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, r, err)

		return
	}

	page := formPage{
		Title:  titleEdit,
		Action: editPath(id),
		Form:   view.NewForm(model.Fields...),
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to get room")

		page.Form.Fail(err)
		handler.form(w, r, failure.GetCode(err), page)

		return
	}

	var input dto.RoomForm
	input.FromModel(room)
	page.Form.SetValues(input.Values())

	handler.form(w, r, http.StatusOK, page)
}

func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, r, err)

		return
	}

	var input dto.RoomForm
	input.FromRequest(r)

	form := view.NewForm(model.Fields...)
	form.SetValues(input.Values())
	form.Begin()

	if err := handler.service.Update(ctx, id, input.ToRequest()); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to update room")

		form.Fail(err)
		handler.form(w, r, http.StatusUnprocessableEntity, formPage{
			Title:  titleEdit,
			Action: editPath(id),
			Form:   form,
		})

		return
	}

	form.Succeed()
	scope.AddEvent("Room updated successfully")

	http.Redirect(w, r, model.Path, http.StatusSeeOther)
}

// DeleteRoom issues the DELETE confirmed in the dialog and sends the browser
// back to the same list page, which fetches it again. The page number is kept
// even when the deleted row was the last one on it.
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, r, err)

		return
	}

	query := handler.listQuery(r)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to delete room")

		table, loadErr := handler.load(ctx, query)
		if loadErr != nil {
			logger.Ctx(ctx).Error().Err(loadErr).Msg("failed to get rooms")
		}

		table.Banner = deleteFailure(err)
		handler.page(w, r, failure.GetCode(err), table)

		return
	}

	scope.AddEvent("Room deleted successfully")

	http.Redirect(w, r, query.Link(model.Path), http.StatusSeeOther)
}

func (handler *Handler) listQuery(r *http.Request) gDto.QueryParams {
	query := gDto.QueryParams{PageSize: handler.cfg.API.PageSize}
	query.FromRequest(r, true)

	return query
}

func (handler *Handler) load(ctx context.Context, query gDto.QueryParams) (*render.Table[model.Room], error) {
	list := view.NewList(query, model.ID)
	err := list.Load(ctx, handler.service.GetAll)

	return &render.Table[model.Room]{
		Path:  model.Path,
		List:  list,
		Empty: messageEmpty,
	}, err
}

func (handler *Handler) page(w http.ResponseWriter, r *http.Request, status int, table *render.Table[model.Room]) {
	handler.render.Page(w, r, status, render.Page{
		Name:    render.PageRoomList,
		Title:   "Rooms",
		Active:  model.Path,
		Content: table,
	})
}

func (handler *Handler) form(w http.ResponseWriter, r *http.Request, status int, page formPage) {
	handler.render.Page(w, r, status, render.Page{
		Name:    render.PageRoomForm,
		Title:   page.Title,
		Active:  model.Path,
		Content: page,
	})
}

func editPath(id int) string {
	return model.Path + "/edit/" + strconv.Itoa(id)
}

func deleteFailure(err error) string {
	if problem, ok := failure.AsProblem(err); ok && problem.Message != "" {
		return problem.Message
	}

	return constant.MessageFallback
}
