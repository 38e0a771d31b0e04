package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"bookspace/infras/api"
	"bookspace/internal/domains/room/model"
	"bookspace/internal/domains/room/model/dto"
	gDto "bookspace/shared/dto"
)

type Room interface {
	GetAll(ctx context.Context, query url.Values) (gDto.Page[model.Room], error)
	Get(ctx context.Context, id int) (model.Room, error)
	Insert(ctx context.Context, req dto.RoomRequest) error
	Update(ctx context.Context, id int, req dto.RoomRequest) error
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client api.Client
}

func New(client api.Client) Room {
	return &repositoryImpl{
		client: client,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, query url.Values) (gDto.Page[model.Room], error) {
	var res gDto.PageResponse[model.Room]

	if err := r.client.Get(ctx, model.Path, query, &res); err != nil {
		return gDto.Page[model.Room]{}, fmt.Errorf("listing rooms: %w", err)
	}

	return res.ToPage(), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Room, error) {
	var res model.Room

	if err := r.client.Get(ctx, model.ItemPath(id), nil, &res); err != nil {
		return model.Room{}, fmt.Errorf("getting room %d: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, req dto.RoomRequest) error {
	if err := r.client.Post(ctx, model.Path, req, nil); err != nil {
		return fmt.Errorf("creating room: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.RoomRequest) error {
	if err := r.client.Put(ctx, model.ItemPath(id), req, nil); err != nil {
		return fmt.Errorf("updating room %d: %w", id, err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, model.ItemPath(id)); err != nil {
		return fmt.Errorf("deleting room %d: %w", id, err)
	}

	return nil
}
