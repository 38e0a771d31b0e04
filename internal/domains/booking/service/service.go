package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"

	"bookspace/infras/otel"
	"bookspace/internal/domains/booking/model"
	"bookspace/internal/domains/booking/model/dto"
	"bookspace/internal/domains/booking/repository"
	"bookspace/shared/constant"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Get(ctx context.Context, id int) (model.Booking, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	Update(ctx context.Context, id int, req dto.UpdateBookingRequest) error
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get booking")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Insert(ctx, req); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return err
	}

	scope.AddEvent("booking created")

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id int, req dto.UpdateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Update(ctx, id, req); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update booking")

		return err
	}

	scope.AddEvent("booking updated")

	return nil
}
