package repository_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookspace/infras/api"
	"bookspace/infras/otel/mocks"
	"bookspace/internal/domains/history/repository"
	"bookspace/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_GetAll(t *testing.T) {
	var gotURI string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"borrowerName":"Ann","roomId":3,"room":{"id":3,"name":"SAW 08.10"},"startTime":"2024-01-01T10:00:00Z","endTime":"2024-01-01T12:00:00Z","status":"Rejected"}],"total":1}`))
	}))
	defer server.Close()

	client := api.NewWithHTTPClient(server.URL+"/api", server.Client(), mocks.NewOtel())
	repo := repository.New(client)

	page, err := repo.GetAll(context.Background(), map[string][]string{
		"page":     {"1"},
		"pageSize": {"8"},
		"search":   {""},
		"status":   {"Rejected"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/histories?page=1&pageSize=8&search=&status=Rejected", gotURI)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "SAW 08.10", page.Items[0].RoomName())
}

func TestHistoryRepository_GetAll_InvalidEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	repo := repository.New(api.NewWithHTTPClient(server.URL, server.Client(), mocks.NewOtel()))

	_, err := repo.GetAll(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}
