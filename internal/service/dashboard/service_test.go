package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/dashboard"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	mu        sync.Mutex
	events    []event.LeaveEvent
	holidays  []time.Time
	employees map[int64]string

	eventsErr   error
	holidaysErr error
	namesErr    error

	holidayFrom, holidayTo time.Time
	holidayCalls           int
	nameLookups            [][]int64
}

func (f *fakeDashboardRepo) ListEvents(ctx context.Context, filter event.Filter) ([]event.LeaveEvent, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	var out []event.LeaveEvent
	for _, e := range f.events {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDashboardRepo) ListHolidayDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.holidayCalls++
	f.holidayFrom, f.holidayTo = from, to
	if f.holidaysErr != nil {
		return nil, f.holidaysErr
	}
	var out []time.Time
	for _, h := range f.holidays {
		if !h.Before(from) && !h.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeDashboardRepo) GetEmployeeNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nameLookups = append(f.nameLookups, ids)
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	out := make(map[int64]string)
	for _, id := range ids {
		if name, ok := f.employees[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func ev(id, employeeID int64, name string, leaveType event.LeaveType, start, end string) event.LeaveEvent {
	e := event.LeaveEvent{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: name,
		LeaveType:    leaveType,
		StartDate:    date(start),
		EndDate:      date(end),
	}
	e.Date = event.LegacyDate(e.StartDate, e.EndDate)
	return e
}

func ptr(t time.Time) *time.Time { return &t }

func newTestService(repo dashboard.DashboardRepository, today string) *DashboardServiceImpl {
	loc := time.FixedZone("ICT", 7*3600)
	svc := NewDashboardService(repo, loc).(*DashboardServiceImpl)
	d := date(today)
	svc.now = func() time.Time { return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, loc) }
	return svc
}

func june() dashboard.SummaryFilter {
	return dashboard.SummaryFilter{StartDate: ptr(date("2025-06-01")), EndDate: ptr(date("2025-06-30")), IncludeFutureEvents: true}
}

func assertConsistent(t *testing.T, s *dashboard.SummaryResponse) {
	t.Helper()
	events, days := 0, 0
	for _, r := range s.EmployeeRanking {
		events += r.TotalEvents
		days += r.TotalBusinessDays
	}
	assert.Equal(t, s.MonthlyStats.TotalEvents, events)
	assert.Equal(t, s.MonthlyStats.TotalBusinessDays, days)
	assert.Equal(t, s.MonthlyStats.TotalEmployees, len(s.EmployeeRanking))
}

func TestGetSummary_SingleAndMultiDayEvents(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
		ev(2, 1, "Alice", event.LeaveTypeVacation, "2025-06-10", "2025-06-15"),
	}}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), june())
	require.NoError(t, err)

	assert.Equal(t, 2, got.MonthlyStats.TotalEvents)
	assert.Equal(t, 1, got.MonthlyStats.TotalEmployees)
	assert.Equal(t, 5, got.MonthlyStats.TotalBusinessDays)
	require.Len(t, got.EmployeeRanking, 1)
	assert.Equal(t, "Alice", got.EmployeeRanking[0].Name)
	assert.Equal(t, map[string]int{"sick": 1, "vacation": 1}, got.EmployeeRanking[0].EventTypes)
	assertConsistent(t, got)
}

func TestGetSummary_PartialOverlapCountsFullSpan(t *testing.T) {
	repo := &fakeDashboardRepo{
		events: []event.LeaveEvent{
			ev(1, 1, "Alice", event.LeaveTypeVacation, "2025-05-28", "2025-06-03"),
		},
		holidays: []time.Time{date("2025-05-29")},
	}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), june())
	require.NoError(t, err)

	assert.Equal(t, 1, got.MonthlyStats.TotalEvents)
	// May 28 Wed, Jun 2 Mon, Jun 3 Tue and May 30 Fri; May 29 is a holiday
	assert.Equal(t, 4, got.MonthlyStats.TotalBusinessDays)
	assert.Equal(t, date("2025-05-28"), repo.holidayFrom)
	assert.Equal(t, date("2025-06-03"), repo.holidayTo)
}

func TestGetSummary_ExcludesEventsOutsideRange(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-05-20", "2025-05-30"),
		ev(2, 2, "Bob", event.LeaveTypeSick, "2025-07-01", "2025-07-02"),
		ev(3, 3, "Cara", event.LeaveTypeSick, "2025-06-30", "2025-07-04"),
	}}
	svc := newTestService(repo, "2025-12-31")

	got, err := svc.GetSummary(context.Background(), june())
	require.NoError(t, err)

	assert.Equal(t, 1, got.MonthlyStats.TotalEvents)
	require.Len(t, got.EmployeeRanking, 1)
	assert.Equal(t, "Cara", got.EmployeeRanking[0].Name)
	assert.Equal(t, 5, got.EmployeeRanking[0].TotalBusinessDays)
}

func TestGetSummary_FutureEvents(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-06-13", "2025-06-13"),
		ev(2, 2, "Bob", event.LeaveTypeVacation, "2025-06-16", "2025-06-18"),
		ev(3, 3, "Cara", event.LeaveTypePersonal, "2025-06-15", "2025-06-17"),
	}}
	svc := newTestService(repo, "2025-06-15")

	filter := june()
	filter.IncludeFutureEvents = false
	got, err := svc.GetSummary(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, 2, got.MonthlyStats.TotalEvents)
	for _, r := range got.EmployeeRanking {
		assert.NotEqual(t, "Bob", r.Name)
	}

	filter.IncludeFutureEvents = true
	got, err = svc.GetSummary(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 3, got.MonthlyStats.TotalEvents)
}

func TestGetSummary_TodayUsesConfiguredZone(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-06-16", "2025-06-16"),
	}}
	loc := time.FixedZone("ICT", 7*3600)
	svc := NewDashboardService(repo, loc).(*DashboardServiceImpl)
	// Still June 15 in UTC, already June 16 in UTC+7
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC) }

	got, err := svc.GetSummary(context.Background(), dashboard.SummaryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, got.MonthlyStats.TotalEvents)
}

func TestGetSummary_DistinctEmployeesAndRanking(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 2, "Bob", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
		ev(2, 1, "Alice", event.LeaveTypeSick, "2025-06-03", "2025-06-03"),
		ev(3, 2, "Bob", event.LeaveTypeVacation, "2025-06-04", "2025-06-05"),
		ev(4, 2, "Bob", event.LeaveTypeSick, "2025-06-09", "2025-06-09"),
		ev(5, 3, "Aaron", event.LeaveTypePersonal, "2025-06-10", "2025-06-10"),
	}}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), june())
	require.NoError(t, err)

	assert.Equal(t, 5, got.MonthlyStats.TotalEvents)
	assert.Equal(t, 3, got.MonthlyStats.TotalEmployees)
	assert.Equal(t, "sick", got.MonthlyStats.MostCommonType)

	require.Len(t, got.EmployeeRanking, 3)
	assert.Equal(t, "Bob", got.EmployeeRanking[0].Name)
	assert.Equal(t, 3, got.EmployeeRanking[0].TotalEvents)
	assert.Equal(t, 4, got.EmployeeRanking[0].TotalBusinessDays)
	// one event each: name ascending
	assert.Equal(t, "Aaron", got.EmployeeRanking[1].Name)
	assert.Equal(t, "Alice", got.EmployeeRanking[2].Name)
	assertConsistent(t, got)
}

func TestGetSummary_LeaveTypeFilter(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-06-02", "2025-06-03"),
		ev(2, 1, "Alice", event.LeaveTypeVacation, "2025-06-10", "2025-06-13"),
		ev(3, 2, "Bob", event.LeaveTypeVacation, "2025-06-16", "2025-06-16"),
		ev(4, 3, "Cara", event.LeaveTypeUnpaid, "2025-06-20", "2025-06-23"),
	}}
	svc := newTestService(repo, "2025-06-30")
	ctx := context.Background()

	all, err := svc.GetSummary(ctx, june())
	require.NoError(t, err)

	withAll := june()
	withAll.LeaveType = dashboard.AllLeaveTypes
	allKeyword, err := svc.GetSummary(ctx, withAll)
	require.NoError(t, err)
	assert.Equal(t, all, allKeyword)

	sumEvents, sumDays := 0, 0
	for _, lt := range []string{"sick", "vacation", "unpaid"} {
		f := june()
		f.LeaveType = lt
		got, err := svc.GetSummary(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, lt, got.MonthlyStats.MostCommonType)
		sumEvents += got.MonthlyStats.TotalEvents
		sumDays += got.MonthlyStats.TotalBusinessDays
	}
	assert.Equal(t, all.MonthlyStats.TotalEvents, sumEvents)
	assert.Equal(t, all.MonthlyStats.TotalBusinessDays, sumDays)
}

func TestGetSummary_UnknownLeaveTypeIsEmpty(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
	}}
	svc := newTestService(repo, "2025-06-30")

	f := june()
	f.LeaveType = "holiday-party"
	got, err := svc.GetSummary(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, 0, got.MonthlyStats.TotalEvents)
	assert.Equal(t, 0, got.MonthlyStats.TotalEmployees)
	assert.Equal(t, 0, got.MonthlyStats.TotalBusinessDays)
	assert.Equal(t, "N/A", got.MonthlyStats.MostCommonType)
	assert.NotNil(t, got.EmployeeRanking)
	assert.Empty(t, got.EmployeeRanking)
	assert.Zero(t, repo.holidayCalls)
}

func TestGetSummary_MostCommonTypeTieIsLexical(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeVacation, "2025-06-02", "2025-06-02"),
		ev(2, 2, "Bob", event.LeaveTypeSick, "2025-06-03", "2025-06-03"),
		ev(3, 3, "Cara", event.LeaveTypePersonal, "2025-06-04", "2025-06-04"),
	}}
	svc := newTestService(repo, "2025-06-30")

	for i := 0; i < 10; i++ {
		got, err := svc.GetSummary(context.Background(), june())
		require.NoError(t, err)
		assert.Equal(t, "personal", got.MonthlyStats.MostCommonType)
	}
}

func TestGetSummary_NameFallback(t *testing.T) {
	repo := &fakeDashboardRepo{
		events: []event.LeaveEvent{
			ev(1, 1, "", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
			ev(2, 2, "", event.LeaveTypeSick, "2025-06-03", "2025-06-03"),
			ev(3, 3, "Cara (old name)", event.LeaveTypeSick, "2025-06-04", "2025-06-04"),
		},
		employees: map[int64]string{1: "Alice", 3: "Cara"},
	}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), june())
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, r := range got.EmployeeRanking {
		names[r.Name] = true
	}
	assert.True(t, names["Alice"])
	assert.True(t, names["Unknown"])
	assert.True(t, names["Cara (old name)"])

	require.Len(t, repo.nameLookups, 1)
	assert.ElementsMatch(t, []int64{1, 2}, repo.nameLookups[0])
}

func TestAggregate_FirstStoredNameWins(t *testing.T) {
	events := []event.LeaveEvent{
		ev(1, 1, "Alice Brown", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
		ev(2, 1, "Alice Smith", event.LeaveTypeSick, "2025-06-09", "2025-06-09"),
		ev(3, 1, "", event.LeaveTypeSick, "2025-06-16", "2025-06-16"),
	}

	got := Aggregate(events, holiday.NewSet(), map[int64]string{1: "Alice Current"})
	require.Len(t, got.EmployeeRanking, 1)
	assert.Equal(t, "Alice Brown", got.EmployeeRanking[0].Name)
	assert.Equal(t, 3, got.EmployeeRanking[0].TotalEvents)
}

func TestGetSummary_NoDateFilterAggregatesAll(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2024-01-02", "2024-01-02"),
		ev(2, 2, "Bob", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
	}}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), dashboard.SummaryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, got.MonthlyStats.TotalEvents)
	assert.Equal(t, date("2024-01-02"), repo.holidayFrom)
	assert.Equal(t, date("2025-06-02"), repo.holidayTo)
}

func TestGetSummary_OpenEndedRange(t *testing.T) {
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{
		ev(1, 1, "Alice", event.LeaveTypeSick, "2025-05-02", "2025-05-02"),
		ev(2, 2, "Bob", event.LeaveTypeSick, "2025-06-02", "2025-06-02"),
	}}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), dashboard.SummaryFilter{StartDate: ptr(date("2025-06-01"))})
	require.NoError(t, err)
	assert.Equal(t, 1, got.MonthlyStats.TotalEvents)

	got, err = svc.GetSummary(context.Background(), dashboard.SummaryFilter{EndDate: ptr(date("2025-05-31"))})
	require.NoError(t, err)
	assert.Equal(t, 1, got.MonthlyStats.TotalEvents)
}

func TestGetSummary_LegacyDateOnlyEvent(t *testing.T) {
	legacy := event.LeaveEvent{ID: 1, EmployeeID: 1, EmployeeName: "Alice", LeaveType: event.LeaveTypeSick, Date: ptr(date("2025-06-04"))}
	repo := &fakeDashboardRepo{events: []event.LeaveEvent{legacy}}
	svc := newTestService(repo, "2025-06-30")

	got, err := svc.GetSummary(context.Background(), june())
	require.NoError(t, err)
	assert.Equal(t, 1, got.MonthlyStats.TotalEvents)
	assert.Equal(t, 1, got.MonthlyStats.TotalBusinessDays)
}

func TestGetSummary_StoreErrors(t *testing.T) {
	storeDown := errors.New("connection refused")

	repo := &fakeDashboardRepo{eventsErr: storeDown}
	_, err := newTestService(repo, "2025-06-30").GetSummary(context.Background(), june())
	assert.ErrorIs(t, err, storeDown)

	repo = &fakeDashboardRepo{
		events:      []event.LeaveEvent{ev(1, 1, "Alice", event.LeaveTypeSick, "2025-06-02", "2025-06-02")},
		holidaysErr: storeDown,
	}
	got, err := newTestService(repo, "2025-06-30").GetSummary(context.Background(), june())
	assert.ErrorIs(t, err, storeDown)
	assert.Nil(t, got)

	repo = &fakeDashboardRepo{
		events:   []event.LeaveEvent{ev(1, 1, "", event.LeaveTypeSick, "2025-06-02", "2025-06-02")},
		namesErr: storeDown,
	}
	got, err = newTestService(repo, "2025-06-30").GetSummary(context.Background(), june())
	assert.ErrorIs(t, err, storeDown)
	assert.Nil(t, got)
	assert.Len(t, repo.nameLookups, 1)
}
