package event

import (
	"context"
	"time"
)

type EventRepository interface {
	GetByID(ctx context.Context, id int64) (LeaveEvent, error)
	// Find returns events matching filter ordered by effective start then id.
	Find(ctx context.Context, filter Filter) ([]LeaveEvent, error)
	Create(ctx context.Context, e LeaveEvent) (LeaveEvent, error)
	Update(ctx context.Context, e LeaveEvent) (LeaveEvent, error)
	Delete(ctx context.Context, id int64) error
	// Stats counts all events, per leave type, and per start month since the given date.
	Stats(ctx context.Context, since time.Time) (Stats, error)
	// DeleteOverlapping removes every event touching [from, to] and returns the count.
	DeleteOverlapping(ctx context.Context, from, to time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
