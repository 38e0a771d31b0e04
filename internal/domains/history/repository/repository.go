package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"bookspace/infras/api"
	"bookspace/internal/domains/booking/model"
	gDto "bookspace/shared/dto"
)

type History interface {
	GetAll(ctx context.Context, query url.Values) (gDto.Page[model.Booking], error)
}

type repositoryImpl struct {
	client api.Client
}

func New(client api.Client) History {
	return &repositoryImpl{
		client: client,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, query url.Values) (gDto.Page[model.Booking], error) {
	var res gDto.PageResponse[model.Booking]

	if err := r.client.Get(ctx, model.HistoryPath, query, &res); err != nil {
		return gDto.Page[model.Booking]{}, fmt.Errorf("listing booking history: %w", err)
	}

	return res.ToPage(), nil
}
