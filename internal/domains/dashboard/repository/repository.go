package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bookspace/infras/api"
	"bookspace/internal/domains/dashboard/model"
	"bookspace/internal/domains/dashboard/model/dto"
)

type Dashboard interface {
	Get(ctx context.Context) (model.Stat, error)
}

type repositoryImpl struct {
	client api.Client
}

func New(client api.Client) Dashboard {
	return &repositoryImpl{
		client: client,
	}
}

func (r *repositoryImpl) Get(ctx context.Context) (model.Stat, error) {
	var res dto.StatResponse

	if err := r.client.Get(ctx, model.Path, nil, &res); err != nil {
		return model.Stat{}, fmt.Errorf("getting dashboard stats: %w", err)
	}

	return res.ToModel(), nil
}
