package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSummary aggregates leave statistics and the per-employee ranking
	GetSummary(ctx context.Context, filter SummaryFilter) (*SummaryResponse, error)
}
