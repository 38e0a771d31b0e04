package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=History=MockHistoryService

import (
	"context"

	"bookspace/infras/otel"
	"bookspace/internal/domains/booking/model"
	"bookspace/internal/domains/history/repository"
	"bookspace/shared/constant"
	gDto "bookspace/shared/dto"

	"github.com/rs/zerolog/log"
)

// History lists bookings of every status. It backs both the booking list and
// the filtered history view.
type History interface {
	GetAll(ctx context.Context, query gDto.QueryParams) (gDto.Page[model.Booking], error)
}

type serviceImpl struct {
	repo repository.History
	otel otel.Otel
}

func New(repo repository.History, otel otel.Otel) History {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, query gDto.QueryParams) (res gDto.Page[model.Booking], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistories")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if query.Status == "" {
		query.Status = constant.DefaultValueStatus
	}

	res, err = s.repo.GetAll(ctx, query.FilterValues())
	if err != nil {
		log.Error().Err(err).
			Int("page", query.Page).
			Str("status", query.Status).
			Msg("failed to get booking history")

		return res, err
	}

	return res, nil
}
