package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/employee"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
)

// DefaultUpcomingDays is the look-ahead when the caller does not give one.
const DefaultUpcomingDays = 30

const statsMonths = 12

type EventServiceImpl struct {
	eventRepo    event.EventRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	now          func() time.Time
}

func NewEventService(eventRepo event.EventRepository, employeeRepo employee.EmployeeRepository, loc *time.Location) event.EventService {
	return &EventServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *EventServiceImpl) today() time.Time {
	return utils.DateOf(s.now(), s.loc)
}

// Create implements event.EventService. The employee's current name is copied onto the event.
func (s *EventServiceImpl) Create(ctx context.Context, req event.CreateEventRequest) (event.LeaveEvent, error) {
	if err := req.Validate(); err != nil {
		return event.LeaveEvent{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return event.LeaveEvent{}, err
	}

	start, end := req.Range()
	created, err := s.eventRepo.Create(ctx, event.LeaveEvent{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		LeaveType:    event.LeaveType(req.LeaveType),
		Date:         event.LegacyDate(start, end),
		StartDate:    start,
		EndDate:      end,
		Description:  req.Description,
	})
	if err != nil {
		return event.LeaveEvent{}, fmt.Errorf("create event: %w", err)
	}

	slog.Info("Event created", "event_id", created.ID, "employee_id", created.EmployeeID, "leave_type", created.LeaveType)
	return created, nil
}

// Update implements event.EventService.
func (s *EventServiceImpl) Update(ctx context.Context, id int64, req event.UpdateEventRequest) (event.LeaveEvent, error) {
	if id <= 0 {
		return event.LeaveEvent{}, event.ErrInvalidID
	}
	if err := req.Validate(); err != nil {
		return event.LeaveEvent{}, err
	}

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return event.LeaveEvent{}, err
	}
	existing.StartDate, existing.EndDate = existing.EffectiveRange()

	req.Apply(&existing)
	if existing.StartDate.After(existing.EndDate) {
		return event.LeaveEvent{}, event.ErrInvalidDateRange
	}
	existing.Date = event.LegacyDate(existing.StartDate, existing.EndDate)

	emp, err := s.employeeRepo.GetByID(ctx, existing.EmployeeID)
	if err != nil {
		return event.LeaveEvent{}, err
	}
	existing.EmployeeName = emp.Name

	updated, err := s.eventRepo.Update(ctx, existing)
	if err != nil {
		return event.LeaveEvent{}, err
	}

	slog.Info("Event updated", "event_id", updated.ID)
	return updated, nil
}

// Delete implements event.EventService.
func (s *EventServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return event.ErrInvalidID
	}
	return s.eventRepo.Delete(ctx, id)
}

// GetByID implements event.EventService.
func (s *EventServiceImpl) GetByID(ctx context.Context, id int64) (event.LeaveEvent, error) {
	if id <= 0 {
		return event.LeaveEvent{}, event.ErrInvalidID
	}
	return s.eventRepo.GetByID(ctx, id)
}

// List implements event.EventService.
func (s *EventServiceImpl) List(ctx context.Context) ([]event.LeaveEvent, error) {
	return s.eventRepo.Find(ctx, event.Filter{})
}

// ListByDate implements event.EventService.
func (s *EventServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]event.LeaveEvent, error) {
	return s.eventRepo.Find(ctx, event.Filter{From: &date, To: &date})
}

// ListByDateRange implements event.EventService.
func (s *EventServiceImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]event.LeaveEvent, error) {
	if from.After(to) {
		return nil, event.ErrInvalidDateRange
	}
	return s.eventRepo.Find(ctx, event.Filter{From: &from, To: &to})
}

// ListByEmployeeID implements event.EventService.
func (s *EventServiceImpl) ListByEmployeeID(ctx context.Context, employeeID int64) ([]event.LeaveEvent, error) {
	if employeeID <= 0 {
		return nil, employee.ErrInvalidID
	}
	return s.eventRepo.Find(ctx, event.Filter{EmployeeID: &employeeID})
}

// ListByEmployeeName implements event.EventService.
func (s *EventServiceImpl) ListByEmployeeName(ctx context.Context, name string, from, to *time.Time) ([]event.LeaveEvent, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, event.ErrInvalidDateRange
	}
	return s.eventRepo.Find(ctx, event.Filter{EmployeeName: &name, From: from, To: to})
}

// ListByLeaveType implements event.EventService. Unknown types simply match nothing.
func (s *EventServiceImpl) ListByLeaveType(ctx context.Context, leaveType string) ([]event.LeaveEvent, error) {
	return s.eventRepo.Find(ctx, event.Filter{LeaveType: &leaveType})
}

// ListByMonth implements event.EventService.
func (s *EventServiceImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]event.LeaveEvent, error) {
	from, to := utils.MonthBounds(year, month)
	return s.eventRepo.Find(ctx, event.Filter{From: &from, To: &to})
}

// Search implements event.EventService.
func (s *EventServiceImpl) Search(ctx context.Context, query string) ([]event.LeaveEvent, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []event.LeaveEvent{}, nil
	}
	return s.eventRepo.Find(ctx, event.Filter{Query: &query})
}

// Upcoming implements event.EventService.
func (s *EventServiceImpl) Upcoming(ctx context.Context, days int) ([]event.LeaveEvent, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	from := s.today()
	to := utils.AddDays(from, days)
	return s.eventRepo.Find(ctx, event.Filter{From: &from, To: &to})
}

// Stats implements event.EventService.
func (s *EventServiceImpl) Stats(ctx context.Context) (event.Stats, error) {
	today := s.today()
	since := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(statsMonths - 1), 0)
	return s.eventRepo.Stats(ctx, since)
}

// BulkDeleteByMonth implements event.EventService.
func (s *EventServiceImpl) BulkDeleteByMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	from, to := utils.MonthBounds(year, month)
	deleted, err := s.eventRepo.DeleteOverlapping(ctx, from, to)
	if err != nil {
		return 0, err
	}
	slog.Warn("Events bulk deleted", "scope", "month", "year", year, "month", int(month), "deleted", deleted)
	return deleted, nil
}

// BulkDeleteByYear implements event.EventService.
func (s *EventServiceImpl) BulkDeleteByYear(ctx context.Context, year int) (int64, error) {
	from, to := utils.YearBounds(year)
	deleted, err := s.eventRepo.DeleteOverlapping(ctx, from, to)
	if err != nil {
		return 0, err
	}
	slog.Warn("Events bulk deleted", "scope", "year", "year", year, "deleted", deleted)
	return deleted, nil
}

// BulkDeleteAll implements event.EventService.
func (s *EventServiceImpl) BulkDeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.eventRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	slog.Warn("Events bulk deleted", "scope", "all", "deleted", deleted)
	return deleted, nil
}
