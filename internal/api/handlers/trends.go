package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/cardledger/market-trends/pkg/types"
)

// TrendReader serves the current market summary and cache control.
type TrendReader interface {
	CurrentTrends(ctx context.Context) *domain.MarketSummary
	Refresh()
}

// DailyUpdater triggers the once-per-day snapshot update.
type DailyUpdater interface {
	RunDailyUpdate(ctx context.Context) error
}

// TrendsHandler handles trend read and admin operations.
type TrendsHandler struct {
	reader  TrendReader
	updater DailyUpdater
}

// NewTrendsHandler creates a new TrendsHandler.
func NewTrendsHandler(r TrendReader, u DailyUpdater) *TrendsHandler {
	return &TrendsHandler{reader: r, updater: u}
}

// --- Input/Output types ---

// GetTrendsOutput is the response for the current trends endpoint.
type GetTrendsOutput struct {
	Body domain.MarketSummary
}

// RefreshOutput is the response body for the cache refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status string `json:"status" example:"cache invalidated" doc:"Refresh status"`
	}
}

// UpdateOutput is the response body for the daily update trigger.
type UpdateOutput struct {
	Body struct {
		Status string `json:"status" example:"daily update completed" doc:"Update status"`
	}
}

// --- Handlers ---

// GetTrends returns the current market summary. Upstream failures
// surface as an empty summary, never as a 5xx.
func (h *TrendsHandler) GetTrends(
	ctx context.Context,
	_ *struct{},
) (*GetTrendsOutput, error) {
	summary := h.reader.CurrentTrends(ctx)
	return &GetTrendsOutput{Body: *summary}, nil
}

// RefreshTrends invalidates the trend cache so the next read recomputes.
func (h *TrendsHandler) RefreshTrends(
	_ context.Context,
	_ *struct{},
) (*RefreshOutput, error) {
	h.reader.Refresh()

	resp := &RefreshOutput{}
	resp.Body.Status = "cache invalidated"
	return resp, nil
}

// RunUpdate runs the daily snapshot update for today.
func (h *TrendsHandler) RunUpdate(
	ctx context.Context,
	_ *struct{},
) (*UpdateOutput, error) {
	if err := h.updater.RunDailyUpdate(ctx); err != nil {
		return nil, huma.Error500InternalServerError("daily update failed: " + err.Error())
	}

	resp := &UpdateOutput{}
	resp.Body.Status = "daily update completed"
	return resp, nil
}

// RegisterTrendRoutes registers trend endpoints with the Huma API.
func RegisterTrendRoutes(api huma.API, h *TrendsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-trends",
		Method:      http.MethodGet,
		Path:        "/api/v1/trends",
		Summary:     "Get current market trends",
		Description: "Returns the aggregated market summary for the configured card search. " +
			"Served from a short-lived cache; an upstream outage yields an empty summary, not an error.",
		Tags: []string{"trends"},
	}, h.GetTrends)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-trends",
		Method:      http.MethodPost,
		Path:        "/api/v1/trends/refresh",
		Summary:     "Force a trend cache refresh",
		Description: "Invalidates the trend cache so the next read recomputes from the marketplace.",
		Tags:        []string{"trends"},
	}, h.RefreshTrends)

	huma.Register(api, huma.Operation{
		OperationID: "run-daily-update",
		Method:      http.MethodPost,
		Path:        "/api/v1/trends/update",
		Summary:     "Run the daily snapshot update",
		Description: "Writes today's trend snapshot if it does not exist yet and invalidates the " +
			"trend cache. Idempotent: re-running for a day that already has a snapshot is a no-op.",
		Tags:   []string{"trends"},
		Errors: []int{http.StatusInternalServerError},
	}, h.RunUpdate)
}
