package http

import (
	"log/slog"
	"net/http"

	"github.com/paracal/paracal-backend-go/internal/domain/dashboard"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetSummary returns leave statistics and the employee ranking
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSummary handles GET /dashboard/summary and GET /events/dashboard/summary.
// The body is the bare summary object.
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dashboard.SummaryRequest{
		StartDate:           q.Get("startDate"),
		EndDate:             q.Get("endDate"),
		EventType:           q.Get("eventType"),
		IncludeFutureEvents: q.Get("includeFutureEvents"),
	}
	if req.EventType == "" {
		req.EventType = q.Get("leaveType")
	}

	filter, err := req.ToFilter()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetSummary(r.Context(), filter)
	if err != nil {
		slog.Error("Dashboard summary error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
