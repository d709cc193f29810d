package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/dashboard"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// ListEvents implements dashboard.DashboardRepository.
// All filters are pushed into SQL; the predicate matches event.Filter.Matches.
func (r *dashboardRepositoryImpl) ListEvents(ctx context.Context, filter event.Filter) ([]event.LeaveEvent, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildEventWhere(filter, 1)
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY id ASC
	`, eventColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard events: %w", err)
	}
	return collectEvents(rows)
}

// ListHolidayDates implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListHolidayDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT date
		FROM company_holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holiday dates: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// GetEmployeeNames implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return NewEmployeeRepository(r.db).GetNamesByIDs(ctx, ids)
}
