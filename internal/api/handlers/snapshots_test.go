package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cardledger/market-trends/internal/api/handlers"
	"github.com/cardledger/market-trends/internal/store"
	storeMocks "github.com/cardledger/market-trends/internal/store/mocks"
	domain "github.com/cardledger/market-trends/pkg/types"
)

func snapshotsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterSnapshotRoutes(api, handlers.NewSnapshotsHandler(ms))
	return api
}

func TestListSnapshots_Success(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListSnapshots(mock.Anything, 30).Return([]domain.TrendSnapshot{
		{
			ID:           "s1",
			SnapshotDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			AveragePrice: 22.27,
			TotalSold:    11,
		},
	}, nil)

	api := snapshotsAPI(t, ms)

	resp := api.Get("/api/v1/snapshots?limit=30")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "22.27")
}

func TestListSnapshots_Empty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListSnapshots(mock.Anything, 90).Return(nil, nil)

	api := snapshotsAPI(t, ms)

	resp := api.Get("/api/v1/snapshots")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestListSnapshots_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListSnapshots(mock.Anything, 90).Return(nil, assert.AnError)

	api := snapshotsAPI(t, ms)

	resp := api.Get("/api/v1/snapshots")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetSnapshot_Success(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSnapshotByDate(mock.Anything, date).Return(&domain.TrendSnapshot{
		ID:           "s1",
		SnapshotDate: date,
		AveragePrice: 22.27,
		TotalSold:    11,
	}, nil)
	ms.EXPECT().ListSnapshotItems(mock.Anything, "s1").Return([]domain.TrendSnapshotItem{
		{ID: "i1", SnapshotID: "s1", Title: "Charizard Base Set Holo", Price: 425},
	}, nil)

	api := snapshotsAPI(t, ms)

	resp := api.Get("/api/v1/snapshots/2025-06-15")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Charizard Base Set Holo")
	assert.Contains(t, resp.Body.String(), "22.27")
}

func TestGetSnapshot_NotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSnapshotByDate(mock.Anything, mock.Anything).
		Return(nil, store.ErrSnapshotNotFound)

	api := snapshotsAPI(t, ms)

	resp := api.Get("/api/v1/snapshots/2025-06-16")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetSnapshot_BadDate(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	api := snapshotsAPI(t, ms)

	resp := api.Get("/api/v1/snapshots/not-a-date")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
