package dashboard

import (
	"context"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/event"
)

// DashboardRepository defines the reads the summary needs
type DashboardRepository interface {
	// ListEvents returns events matching the filter
	ListEvents(ctx context.Context, filter event.Filter) ([]event.LeaveEvent, error)

	// ListHolidayDates returns company holiday dates within [from, to]
	ListHolidayDates(ctx context.Context, from, to time.Time) ([]time.Time, error)

	// GetEmployeeNames returns current employee names keyed by id
	GetEmployeeNames(ctx context.Context, ids []int64) (map[int64]string, error)
}
