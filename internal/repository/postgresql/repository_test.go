package postgresql

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
	"github.com/paracal/paracal-backend-go/internal/domain/employee"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/domain/publicholiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL and empties the calendar tables.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, db.EnsureSchema(ctx))
	_, err = db.Exec(ctx, "TRUNCATE TABLE events, employees, company_holidays, cronjob_configs, thai_holidays RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	employees := NewEmployeeRepository(db)
	events := NewEventRepository(db)

	alice, err := employees.Create(ctx, "Alice")
	require.NoError(t, err)
	bob, err := employees.Create(ctx, "Bob")
	require.NoError(t, err)

	names, err := employees.GetNamesByIDs(ctx, []int64{alice.ID, bob.ID, 9999})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{alice.ID: "Alice", bob.ID: "Bob"}, names)

	_, err = events.Create(ctx, event.LeaveEvent{
		EmployeeID: alice.ID, EmployeeName: alice.Name, LeaveType: event.LeaveTypeSick,
		StartDate: day("2025-06-02"), EndDate: day("2025-06-02"), Date: event.LegacyDate(day("2025-06-02"), day("2025-06-02")),
	})
	require.NoError(t, err)

	t.Run("rename keeps stored event names", func(t *testing.T) {
		_, err := employees.Update(ctx, alice.ID, "Alice Smith")
		require.NoError(t, err)

		got, err := events.Find(ctx, event.Filter{EmployeeID: &alice.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice", got[0].EmployeeName)
	})

	t.Run("delete cascades to events", func(t *testing.T) {
		require.NoError(t, employees.Delete(ctx, alice.ID))

		got, err := events.Find(ctx, event.Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)

		_, err = employees.GetByID(ctx, alice.ID)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("event for unknown employee", func(t *testing.T) {
		_, err := events.Create(ctx, event.LeaveEvent{
			EmployeeID: 9999, LeaveType: event.LeaveTypeSick, StartDate: day("2025-06-02"), EndDate: day("2025-06-02"),
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestEventRepository_FindMatchesInMemoryFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	emp, err := NewEmployeeRepository(db).Create(ctx, "Carol")
	require.NoError(t, err)
	events := NewEventRepository(db)

	seed := []event.LeaveEvent{
		{LeaveType: event.LeaveTypeSick, StartDate: day("2025-06-02"), EndDate: day("2025-06-02")},
		{LeaveType: event.LeaveTypeVacation, StartDate: day("2025-05-28"), EndDate: day("2025-06-03")},
		{LeaveType: event.LeaveTypeVacation, StartDate: day("2025-07-01"), EndDate: day("2025-07-04")},
		{LeaveType: event.LeaveTypePersonal, StartDate: day("2025-06-16"), EndDate: day("2025-06-16")},
	}
	var stored []event.LeaveEvent
	for _, e := range seed {
		e.EmployeeID = emp.ID
		e.EmployeeName = emp.Name
		e.Date = event.LegacyDate(e.StartDate, e.EndDate)
		created, err := events.Create(ctx, e)
		require.NoError(t, err)
		stored = append(stored, created)
	}

	from, to, today := day("2025-06-01"), day("2025-06-30"), day("2025-06-15")
	vacation := "vacation"
	filters := map[string]event.Filter{
		"closed range":   {From: &from, To: &to},
		"from only":      {From: &to},
		"to only":        {To: &from},
		"started before": {From: &from, To: &to, StartedOnOrBefore: &today},
		"leave type":     {LeaveType: &vacation},
	}

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			got, err := events.Find(ctx, f)
			require.NoError(t, err)

			var want []int64
			for _, e := range stored {
				if f.Matches(e) {
					want = append(want, e.ID)
				}
			}
			var ids []int64
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.ElementsMatch(t, want, ids)
		})
	}

	t.Run("overlap delete", func(t *testing.T) {
		deleted, err := events.DeleteOverlapping(ctx, day("2025-07-01"), day("2025-07-31"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})
}

func TestHolidayRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	holidays := NewHolidayRepository(db)

	t.Run("bulk insert is atomic", func(t *testing.T) {
		_, err := holidays.CreateBulk(ctx, []holiday.CompanyHoliday{
			{Name: "New Year", Date: day("2025-01-01")},
			{Name: strings.Repeat("x", 300), Date: day("2025-01-02")},
		})
		require.Error(t, err)

		all, err := holidays.List(ctx, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("bulk insert and range", func(t *testing.T) {
		created, err := holidays.CreateBulk(ctx, []holiday.CompanyHoliday{
			{Name: "New Year", Date: day("2025-01-01")},
			{Name: "Songkran", Date: day("2025-04-14")},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)

		from, to := day("2025-04-01"), day("2025-04-30")
		april, err := holidays.List(ctx, &from, &to)
		require.NoError(t, err)
		require.Len(t, april, 1)
		assert.Equal(t, "Songkran", april[0].Name)

		exists, err := holidays.ExistsOn(ctx, day("2025-04-14"))
		require.NoError(t, err)
		assert.True(t, exists)

		dates, err := NewDashboardRepository(db).ListHolidayDates(ctx, day("2025-01-01"), day("2025-12-31"))
		require.NoError(t, err)
		assert.Len(t, dates, 2)
	})

	t.Run("missing holiday", func(t *testing.T) {
		_, err := holidays.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
	})
}

func TestPublicHolidayRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPublicHolidayRepository(db)

	empty, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.ReplaceYear(ctx, 2025, publicholiday.SourceFallback, publicholiday.Defaults(2025)))
	require.NoError(t, repo.ReplaceYear(ctx, 2024, publicholiday.SourceFallback, publicholiday.Defaults(2024)))

	fresh := []publicholiday.PublicHoliday{
		{Date: day("2025-04-13"), Name: "Songkran", Type: publicholiday.TypePublic},
		{Date: day("2025-02-12"), Name: "Makha Bucha", Type: publicholiday.TypeReligious},
	}
	require.NoError(t, repo.ReplaceYear(ctx, 2025, publicholiday.SourceAPI, fresh))

	got, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Makha Bucha", got[0].Name)
	assert.Equal(t, publicholiday.TypeReligious, got[0].Type)
	assert.True(t, got[1].Date.Equal(day("2025-04-13")))

	other, err := repo.ListByYear(ctx, 2024)
	require.NoError(t, err)
	assert.Len(t, other, len(publicholiday.Defaults(2024)))

	t.Run("failed replace keeps the old list", func(t *testing.T) {
		err := repo.ReplaceYear(ctx, 2025, publicholiday.SourceAPI, []publicholiday.PublicHoliday{
			{Date: day("2025-01-01"), Name: "New Year", Type: "national"},
		})
		require.Error(t, err)

		kept, err := repo.ListByYear(ctx, 2025)
		require.NoError(t, err)
		assert.Len(t, kept, 2)
	})
}

func TestCronjobRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	configs := NewCronjobRepository(db)

	cfg := cronjob.Config{
		Name:             "weekly digest",
		Enabled:          true,
		ScheduleTime:     "08:30",
		WebhookURL:       "https://hooks.slack.com/services/T000/B000/XXX",
		NotificationDays: 1,
		NotificationType: cronjob.NotificationTypeWeekly,
		WeeklyDays:       []int{1, 3},
		WeeklyScope:      cronjob.WeeklyScopeNext,
	}

	created, err := configs.Create(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, created.WeeklyDays)
	assert.Equal(t, cronjob.WeeklyScopeNext, created.WeeklyScope)

	_, err = configs.Create(ctx, cfg)
	assert.ErrorIs(t, err, cronjob.ErrConfigNameExists)

	created.Enabled = false
	_, err = configs.Update(ctx, created)
	require.NoError(t, err)

	enabled, err := configs.ListEnabled(ctx)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	require.NoError(t, configs.Delete(ctx, created.ID))
	assert.ErrorIs(t, configs.Delete(ctx, created.ID), cronjob.ErrConfigNotFound)
}
