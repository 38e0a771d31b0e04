package booking

import (
	"context"
	"net/http"
	"strconv"

	"bookspace/config"
	"bookspace/infras/otel"
	"bookspace/internal/domains/booking/model"
	"bookspace/internal/domains/booking/model/dto"
	"bookspace/internal/domains/booking/service"
	historyService "bookspace/internal/domains/history/service"
	roomModel "bookspace/internal/domains/room/model"
	roomService "bookspace/internal/domains/room/service"
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
	titleCreate  = "Create Booking"
	titleEdit    = "Edit Booking"
	messageEmpty = "No bookings found."
)

type Handler struct {
	service service.Booking
	history historyService.History
	rooms   roomService.Room
	render  *render.Renderer
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	service service.Booking,
	history historyService.History,
	rooms roomService.Room,
	renderer *render.Renderer,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		service: service,
		history: history,
		rooms:   rooms,
		render:  renderer,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(model.Path, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/create", handler.CreateBookingForm)
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Get("/edit/{id}", handler.EditBookingForm)
		routerGroup.Post("/edit/{id}", handler.UpdateBooking)
	})
}

// GetBookings lists every booking, newest requests included, without filters.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := gDto.QueryParams{PageSize: handler.cfg.API.PageSize}
	query.FromRequest(r, true)
	query.Filter = gDto.Filter{Status: constant.DefaultValueStatus}

	list := view.NewList(query, model.ID)

	status := http.StatusOK
	if err := list.Load(ctx, handler.history.GetAll); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get bookings")

		status = failure.GetCode(err)
	}

	table := &render.Table[model.Booking]{
		Path:  model.Path,
		List:  list,
		Empty: messageEmpty,
	}

	if seq, ok := render.RowsRequest(r); ok {
		handler.render.Rows(w, r, status, render.PageBookingList, seq, table)

		return
	}

	table.OpenDialogs(r)

	handler.render.Page(w, r, status, render.Page{
		Name:    render.PageBookingList,
		Title:   "Bookings",
		Active:  model.Path,
		Content: table,
	})
}

func (handler *Handler) CreateBookingForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBookingForm")
	defer scope.End()

	page := handler.createPage(view.NewForm(model.CreateFields...))

	status := http.StatusOK
	if err := handler.loadRooms(ctx, &page); err != nil {
		scope.TraceError(err)

		status = failure.GetCode(err)
	}

	handler.form(w, r, status, page)
}

func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var input dto.BookingForm
	input.FromRequest(r)

	form := view.NewForm(model.CreateFields...)
	form.SetValues(input.Values())
	form.Begin()

	if err := handler.service.Create(ctx, input.ToCreateRequest()); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create booking")

		form.Fail(err)

		page := handler.createPage(form)
		if loadErr := handler.loadRooms(ctx, &page); loadErr != nil {
			scope.TraceError(loadErr)
		}

		handler.form(w, r, http.StatusUnprocessableEntity, page)

		return
	}

	form.Succeed()
	scope.AddEvent("Booking created successfully")

	http.Redirect(w, r, model.Path, http.StatusSeeOther)
}

// EditBookingForm loads the booking and the room options together; the form
// is filled only once both have arrived.
func (handler *Handler) EditBookingForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBookingForm")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, r, err)

		return
	}

	page := handler.editPage(id, view.NewForm(model.EditFields...))

	err = view.Prefill(ctx,
		func(ctx context.Context) (model.Booking, error) {
			return handler.service.Get(ctx, id)
		},
		handler.rooms.GetReference,
		func(booking model.Booking, rooms []roomModel.Room) {
			var input dto.BookingForm
			input.FromModel(booking)

			page.Form.SetValues(input.Values())
			page.Rooms = rooms
		},
	)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to prefill booking form")

		page.Form.Fail(err)
		handler.form(w, r, failure.GetCode(err), page)

		return
	}

	handler.form(w, r, http.StatusOK, page)
}

func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, r, err)

		return
	}

	var input dto.BookingForm
	input.FromRequest(r)

	form := view.NewForm(model.EditFields...)
	form.SetValues(input.Values())
	form.Begin()

	if err := handler.service.Update(ctx, id, input.ToUpdateRequest()); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to update booking")

		form.Fail(err)

		page := handler.editPage(id, form)
		if loadErr := handler.loadRooms(ctx, &page); loadErr != nil {
			scope.TraceError(loadErr)
		}

		handler.form(w, r, http.StatusUnprocessableEntity, page)

		return
	}

	form.Succeed()
	scope.AddEvent("Booking updated successfully")

	http.Redirect(w, r, model.Path, http.StatusSeeOther)
}

// loadRooms fills the room options of page. A failure is shown in the banner
// unless the form already carries a message.
func (handler *Handler) loadRooms(ctx context.Context, page *formPage) error {
	rooms, err := handler.rooms.GetReference(ctx)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get room options")

		if !page.Form.HasErrors() {
			page.Form.SetGlobal(constant.MessageRoomsFailed)
		}

		return err
	}

	page.Rooms = rooms

	return nil
}

func (handler *Handler) createPage(form *view.Form) formPage {
	return formPage{
		Title:  titleCreate,
		Action: model.Path + "/create",
		Form:   form,
	}
}

func (handler *Handler) editPage(id int, form *view.Form) formPage {
	return formPage{
		Title:   titleEdit,
		Action:  model.Path + "/edit/" + strconv.Itoa(id),
		Form:    form,
		Editing: true,
	}
}

func (handler *Handler) form(w http.ResponseWriter, r *http.Request, status int, page formPage) {
	handler.render.Page(w, r, status, render.Page{
		Name:    render.PageBookingForm,
		Title:   page.Title,
		Active:  model.Path,
		Content: page,
	})
}
