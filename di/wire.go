//go:build wireinject
// +build wireinject

package di

import (
	"bookspace/config"
	"bookspace/infras/api"
	"bookspace/infras/otel"
	"bookspace/infras/redis"
	"bookspace/shared/cache"
	"bookspace/transport/http"
	"bookspace/transport/http/middleware"
	"bookspace/transport/http/render"
	"bookspace/transport/http/router"

	bookingRepository "bookspace/internal/domains/booking/repository"
	bookingService "bookspace/internal/domains/booking/service"
	dashboardRepository "bookspace/internal/domains/dashboard/repository"
	dashboardService "bookspace/internal/domains/dashboard/service"
	historyRepository "bookspace/internal/domains/history/repository"
	historyService "bookspace/internal/domains/history/service"
	roomRepository "bookspace/internal/domains/room/repository"
	roomService "bookspace/internal/domains/room/service"

	bookingHandler "bookspace/internal/handlers/booking"
	dashboardHandler "bookspace/internal/handlers/dashboard"
	historyHandler "bookspace/internal/handlers/history"
	roomHandler "bookspace/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	api.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	render.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	historyDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dashboardHandler.New,
	roomHandler.New,
	bookingHandler.New,
	historyHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
