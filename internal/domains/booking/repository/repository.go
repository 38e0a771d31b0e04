package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bookspace/infras/api"
	"bookspace/internal/domains/booking/model"
	"bookspace/internal/domains/booking/model/dto"
)

type Booking interface {
	Get(ctx context.Context, id int) (model.Booking, error)
	Insert(ctx context.Context, req dto.CreateBookingRequest) error
	Update(ctx context.Context, id int, req dto.UpdateBookingRequest) error
}

type repositoryImpl struct {
	client api.Client
}

func New(client api.Client) Booking {
	return &repositoryImpl{
		client: client,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Booking, error) {
	var res model.Booking

	if err := r.client.Get(ctx, model.ItemPath(id), nil, &res); err != nil {
		return model.Booking{}, fmt.Errorf("getting booking %d: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, req dto.CreateBookingRequest) error {
	if err := r.client.Post(ctx, model.Path, req, nil); err != nil {
		return fmt.Errorf("creating booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.UpdateBookingRequest) error {
	if err := r.client.Put(ctx, model.ItemPath(id), req, nil); err != nil {
		return fmt.Errorf("updating booking %d: %w", id, err)
	}

	return nil
}
