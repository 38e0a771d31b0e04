package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"

	"bookspace/infras/otel"
	"bookspace/internal/domains/dashboard/model"
	"bookspace/internal/domains/dashboard/repository"
	"bookspace/shared/constant"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Get(ctx context.Context) (model.Stat, error)
}

type serviceImpl struct {
	repo repository.Dashboard
	otel otel.Otel
}

func New(repo repository.Dashboard, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Get returns zeroed counters together with any error so callers can still
// render the cards.
func (s *serviceImpl) Get(ctx context.Context) (res model.Stat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return model.Stat{}, err
	}

	scope.SetAttributes(map[string]any{
		"dashboard.total_rooms":      res.TotalRooms,
		"dashboard.pending_requests": res.PendingRequests,
	})

	return res, nil
}
