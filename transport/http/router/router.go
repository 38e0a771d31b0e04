package router

import (
	"bookspace/internal/handlers/booking"
	"bookspace/internal/handlers/dashboard"
	"bookspace/internal/handlers/history"
	"bookspace/internal/handlers/room"
	"bookspace/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type DomainHandlers struct {
	Dashboard dashboard.Handler
	Room      room.Handler
	Booking   booking.Handler
	History   history.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(
			r.Middleware.RequestID,
			chiMiddleware.Recoverer,
			r.Middleware.Tracing,
			r.Middleware.CORS(),
			r.Middleware.RateLimit(),
		)

		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
