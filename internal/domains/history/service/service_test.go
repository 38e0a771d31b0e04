package service_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"bookspace/infras/otel/mocks"
	"bookspace/internal/domains/booking/model"
	historyMocks "bookspace/internal/domains/history/mocks"
	"bookspace/internal/domains/history/service"
	gDto "bookspace/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		query     gDto.QueryParams
		wantQuery string
	}{
		{
			name:      "status filter with empty search",
			query:     gDto.QueryParams{Page: 1, PageSize: 8, Filter: gDto.Filter{Status: "Rejected"}},
			wantQuery: "page=1&pageSize=8&search=&status=Rejected",
		},
		{
			name:      "search with every status",
			query:     gDto.QueryParams{Page: 2, PageSize: 8, Filter: gDto.Filter{Search: "ann", Status: "All"}},
			wantQuery: "page=2&pageSize=8&search=ann&status=All",
		},
		{
			name:      "missing status means all",
			query:     gDto.QueryParams{Page: 1, PageSize: 8},
			wantQuery: "page=1&pageSize=8&search=&status=All",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := historyMocks.NewMockHistory(ctrl)
			svc := service.New(repo, mocks.NewOtel())

			repo.EXPECT().
				GetAll(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, query url.Values) (gDto.Page[model.Booking], error) {
					assert.Equal(t, tt.wantQuery, query.Encode())

					return gDto.Page[model.Booking]{
						Items: []model.Booking{{ID: 1, BorrowerName: "Ann", Status: model.StatusRejected}},
						Total: 1,
					}, nil
				})

			page, err := svc.GetAll(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, 1, page.Total)

			label, style := page.Items[0].Badge()
			assert.Equal(t, "Rejected", label)
			assert.Equal(t, "bg-red-500/20 text-red-400", style)
		})
	}
}

func TestHistoryService_GetAll_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := historyMocks.NewMockHistory(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	boom := errors.New("connection reset")
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(gDto.Page[model.Booking]{}, boom)

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, PageSize: 8})

	assert.ErrorIs(t, err, boom)
}
