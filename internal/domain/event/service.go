package event

import (
	"context"
	"time"
)

type EventService interface {
	Create(ctx context.Context, req CreateEventRequest) (LeaveEvent, error)
	Update(ctx context.Context, id int64, req UpdateEventRequest) (LeaveEvent, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (LeaveEvent, error)
	List(ctx context.Context) ([]LeaveEvent, error)

	ListByDate(ctx context.Context, date time.Time) ([]LeaveEvent, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]LeaveEvent, error)
	ListByEmployeeID(ctx context.Context, employeeID int64) ([]LeaveEvent, error)
	// ListByEmployeeName matches the name stored on the event. from and to are optional.
	ListByEmployeeName(ctx context.Context, name string, from, to *time.Time) ([]LeaveEvent, error)
	ListByLeaveType(ctx context.Context, leaveType string) ([]LeaveEvent, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]LeaveEvent, error)
	Search(ctx context.Context, query string) ([]LeaveEvent, error)
	// Upcoming lists events overlapping today through today+days.
	Upcoming(ctx context.Context, days int) ([]LeaveEvent, error)
	Stats(ctx context.Context) (Stats, error)

	BulkDeleteByMonth(ctx context.Context, year int, month time.Month) (int64, error)
	BulkDeleteByYear(ctx context.Context, year int) (int64, error)
	BulkDeleteAll(ctx context.Context) (int64, error)
}
