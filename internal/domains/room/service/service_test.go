package service_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"bookspace/config"
	"bookspace/infras/otel/mocks"
	roomMocks "bookspace/internal/domains/room/mocks"
	"bookspace/internal/domains/room/model"
	"bookspace/internal/domains/room/model/dto"
	"bookspace/internal/domains/room/service"
	gDto "bookspace/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)

	cfg := &config.Config{}
	cfg.API.ReferencePageSize = 100

	return service.New(mockRepo, cfg, mocks.NewOtel()), mockRepo
}

func TestRoomService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		query     gDto.QueryParams
		setupMock func(repo *roomMocks.MockRoom)
		wantTotal int
		wantErr   bool
	}{
		{
			name:  "first page",
			query: gDto.QueryParams{Page: 1, PageSize: 8},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					GetAll(gomock.Any(), url.Values{"page": {"1"}, "pageSize": {"8"}}).
					Return(gDto.Page[model.Room]{
						Items: []model.Room{{ID: 1, Name: "SAW 08.10"}},
						Total: 9,
					}, nil)
			},
			wantTotal: 9,
		},
		{
			name:  "filters are not sent for rooms",
			query: gDto.QueryParams{Page: 2, PageSize: 8, Filter: gDto.Filter{Search: "aula", Status: "All"}},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					GetAll(gomock.Any(), url.Values{"page": {"2"}, "pageSize": {"8"}}).
					Return(gDto.Page[model.Room]{Total: 9}, nil)
			},
			wantTotal: 9,
		},
		{
			name:  "repository error",
			query: gDto.QueryParams{Page: 1, PageSize: 8},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(gDto.Page[model.Room]{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			page, err := svc.GetAll(context.Background(), tt.query)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, page.Total)
		})
	}
}

func TestRoomService_GetReference(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		GetAll(gomock.Any(), url.Values{"pageSize": {"100"}}).
		Return(gDto.Page[model.Room]{
			Items: []model.Room{{ID: 1, Name: "SAW 08.10"}, {ID: 2, Name: "Aula"}},
			Total: 2,
		}, nil)

	rooms, err := svc.GetReference(context.Background())

	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomService_GetReference_DefaultPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(repo, &config.Config{}, mocks.NewOtel())

	repo.EXPECT().
		GetAll(gomock.Any(), url.Values{"pageSize": {"100"}}).
		Return(gDto.Page[model.Room]{}, nil)

	rooms, err := svc.GetReference(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRoomService_GetReference_Error(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(gDto.Page[model.Room]{}, errors.New("timeout"))

	rooms, err := svc.GetReference(context.Background())

	assert.Error(t, err)
	assert.Nil(t, rooms)
}

func TestRoomService_Get(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), 4).Return(model.Room{ID: 4, Name: "Lab"}, nil)

	room, err := svc.Get(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Lab", room.Name)
}

func TestRoomService_Mutations(t *testing.T) {
	capacity := 40
	req := dto.RoomRequest{Name: "Lab", Capacity: &capacity, Location: "Gedung D4"}
	boom := errors.New("bad request")

	tests := []struct {
		name      string
		call      func(svc service.Room) error
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   error
	}{
		{
			name: "create",
			call: func(svc service.Room) error { return svc.Create(context.Background(), req) },
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Insert(gomock.Any(), req).Return(nil)
			},
		},
		{
			name: "create error",
			call: func(svc service.Room) error { return svc.Create(context.Background(), req) },
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Insert(gomock.Any(), req).Return(boom)
			},
			wantErr: boom,
		},
		{
			name: "update",
			call: func(svc service.Room) error { return svc.Update(context.Background(), 5, req) },
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Update(gomock.Any(), 5, req).Return(nil)
			},
		},
		{
			name: "update error",
			call: func(svc service.Room) error { return svc.Update(context.Background(), 5, req) },
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Update(gomock.Any(), 5, req).Return(boom)
			},
			wantErr: boom,
		},
		{
			name: "delete",
			call: func(svc service.Room) error { return svc.Delete(context.Background(), 5) },
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Delete(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name: "delete error",
			call: func(svc service.Room) error { return svc.Delete(context.Background(), 5) },
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Delete(gomock.Any(), 5).Return(boom)
			},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			err := tt.call(svc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete_Traces(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	ot := mocks.NewOtel()
	svc := service.New(repo, &config.Config{}, ot)

	boom := errors.New("room has bookings")
	repo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), 4).Return(boom)

	require.NoError(t, svc.Delete(context.Background(), 3))
	require.ErrorIs(t, svc.Delete(context.Background(), 4), boom)

	spans := ot.Spans()
	require.Len(t, spans, 2)

	assert.Equal(t, "service.DeleteRoom", spans[0].Name)
	assert.True(t, spans[0].Ended)
	assert.Equal(t, []string{"room deleted"}, spans[0].Events)
	assert.Empty(t, spans[0].Errors)

	assert.True(t, spans[1].Ended)
	assert.Empty(t, spans[1].Events)
	require.Len(t, spans[1].Errors, 1)
	assert.ErrorIs(t, spans[1].Errors[0], boom)
}
