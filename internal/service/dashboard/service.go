package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/dashboard"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	loc *time.Location
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 loc,
		now:                 time.Now,
	}
}

// GetSummary reads matching events, then fetches holidays for the union of
// their spans and fallback names in parallel before folding.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, f dashboard.SummaryFilter) (*dashboard.SummaryResponse, error) {
	// Same day boundary for every event in this call
	today := utils.DateOf(s.now(), s.loc)

	filter := event.Filter{
		From:      f.StartDate,
		To:        f.EndDate,
		LeaveType: f.LeaveTypeFilter(),
	}
	if !f.IncludeFutureEvents {
		filter.StartedOnOrBefore = &today
	}

	events, err := s.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list dashboard events: %w", err)
	}
	if len(events) == 0 {
		summary := Aggregate(nil, holiday.NewSet(), nil)
		return &summary, nil
	}

	spanStart, spanEnd := eventSpan(events)
	missing := employeesWithoutName(events)

	var (
		holidayDates []time.Time
		names        map[int64]string
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dates, err := s.ListHolidayDates(gCtx, spanStart, spanEnd)
		if err != nil {
			return fmt.Errorf("list holiday dates: %w", err)
		}
		holidayDates = dates
		return nil
	})

	if len(missing) > 0 {
		g.Go(func() error {
			found, err := s.GetEmployeeNames(gCtx, missing)
			if err != nil {
				return fmt.Errorf("get employee names: %w", err)
			}
			names = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Aggregate(events, holiday.NewSet(holidayDates...), names)
	return &summary, nil
}

// eventSpan returns the earliest start and latest end across events.
func eventSpan(events []event.LeaveEvent) (time.Time, time.Time) {
	minStart, maxEnd := events[0].EffectiveRange()
	for _, e := range events[1:] {
		start, end := e.EffectiveRange()
		if start.Before(minStart) {
			minStart = start
		}
		if end.After(maxEnd) {
			maxEnd = end
		}
	}
	return minStart, maxEnd
}

func employeesWithoutName(events []event.LeaveEvent) []int64 {
	named := make(map[int64]bool)
	for _, e := range events {
		if strings.TrimSpace(e.EmployeeName) != "" {
			named[e.EmployeeID] = true
		}
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, e := range events {
		if named[e.EmployeeID] || seen[e.EmployeeID] {
			continue
		}
		seen[e.EmployeeID] = true
		ids = append(ids, e.EmployeeID)
	}
	return ids
}
