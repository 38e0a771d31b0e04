package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"net/url"
	"strconv"

	"bookspace/config"
	"bookspace/infras/otel"
	"bookspace/internal/domains/room/model"
	"bookspace/internal/domains/room/model/dto"
	"bookspace/internal/domains/room/repository"
	"bookspace/shared/constant"
	gDto "bookspace/shared/dto"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAll(ctx context.Context, query gDto.QueryParams) (gDto.Page[model.Room], error)
	GetReference(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id int) (model.Room, error)
	Create(ctx context.Context, req dto.RoomRequest) error
	Update(ctx context.Context, id int, req dto.RoomRequest) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Room
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Room, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, query gDto.QueryParams) (res gDto.Page[model.Room], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetAll(ctx, query.Values())
	if err != nil {
		log.Error().Err(err).Int("page", query.Page).Msg("failed to get rooms")

		return res, err
	}

	return res, nil
}

// GetReference loads the rooms offered by the booking forms. The collection
// is assumed to fit into one reference page.
func (s *serviceImpl) GetReference(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReferenceRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pageSize := s.cfg.API.ReferencePageSize
	if pageSize <= 0 {
		pageSize = constant.DefaultValueReferenceSize
	}

	query := url.Values{}
	query.Set(constant.RequestParamPageSize, strconv.Itoa(pageSize))

	page, err := s.repo.GetAll(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reference rooms")

		return nil, err
	}

	if page.Total > len(page.Items) {
		log.Warn().Int("total", page.Total).Int("loaded", len(page.Items)).Msg("reference rooms do not fit one page")
	}

	return page.Items, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get room")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.RoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Insert(ctx, req); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return err
	}

	scope.AddEvent("room created")

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id int, req dto.RoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Update(ctx, id, req); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update room")

		return err
	}

	scope.AddEvent("room updated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete room")

		return err
	}

	scope.AddEvent("room deleted")

	return nil
}
