package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cardledger/market-trends/internal/store"
	domain "github.com/cardledger/market-trends/pkg/types"
)

// SnapshotsHandler handles snapshot history read operations.
type SnapshotsHandler struct {
	store store.Store
}

// NewSnapshotsHandler creates a new SnapshotsHandler.
func NewSnapshotsHandler(s store.Store) *SnapshotsHandler {
	return &SnapshotsHandler{store: s}
}

// --- Input/Output types ---

// ListSnapshotsInput is the input for listing snapshots.
type ListSnapshotsInput struct {
	Limit int `query:"limit" default:"90" minimum:"1" maximum:"365" doc:"Maximum snapshots to return, newest first"`
}

// ListSnapshotsOutput is the response for listing snapshots.
type ListSnapshotsOutput struct {
	Body []domain.TrendSnapshot
}

// GetSnapshotInput is the input for getting a single snapshot by date.
type GetSnapshotInput struct {
	Date string `path:"date" pattern:"^\\d{4}-\\d{2}-\\d{2}$" doc:"Snapshot date (YYYY-MM-DD)"`
}

// SnapshotDetail is a snapshot together with its listing sample.
type SnapshotDetail struct {
	domain.TrendSnapshot
	Items []domain.TrendSnapshotItem `json:"items"`
}

// GetSnapshotOutput is the response for getting a single snapshot.
type GetSnapshotOutput struct {
	Body SnapshotDetail
}

// --- Handlers ---

// ListSnapshots returns persisted daily snapshots, newest first.
func (h *SnapshotsHandler) ListSnapshots(
	ctx context.Context,
	input *ListSnapshotsInput,
) (*ListSnapshotsOutput, error) {
	snaps, err := h.store.ListSnapshots(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list snapshots: " + err.Error())
	}

	if snaps == nil {
		snaps = []domain.TrendSnapshot{}
	}

	return &ListSnapshotsOutput{Body: snaps}, nil
}

// GetSnapshot returns the snapshot for a calendar date with its item sample.
func (h *SnapshotsHandler) GetSnapshot(
	ctx context.Context,
	input *GetSnapshotInput,
) (*GetSnapshotOutput, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid date: " + input.Date)
	}

	snap, err := h.store.GetSnapshotByDate(ctx, date)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			return nil, huma.Error404NotFound("no snapshot for " + input.Date)
		}
		return nil, huma.Error500InternalServerError("failed to get snapshot: " + err.Error())
	}

	items, err := h.store.ListSnapshotItems(ctx, snap.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list snapshot items: " + err.Error())
	}
	if items == nil {
		items = []domain.TrendSnapshotItem{}
	}

	return &GetSnapshotOutput{Body: SnapshotDetail{TrendSnapshot: *snap, Items: items}}, nil
}

// RegisterSnapshotRoutes registers snapshot endpoints with the Huma API.
func RegisterSnapshotRoutes(api huma.API, h *SnapshotsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-snapshots",
		Method:      http.MethodGet,
		Path:        "/api/v1/snapshots",
		Summary:     "List daily trend snapshots",
		Description: "Returns persisted daily snapshots, newest first, for historical charting.",
		Tags:        []string{"snapshots"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListSnapshots)

	huma.Register(api, huma.Operation{
		OperationID: "get-snapshot",
		Method:      http.MethodGet,
		Path:        "/api/v1/snapshots/{date}",
		Summary:     "Get a snapshot by date",
		Description: "Returns the snapshot for a calendar date together with its listing sample.",
		Tags:        []string{"snapshots"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetSnapshot)
}
