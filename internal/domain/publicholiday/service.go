package publicholiday

import (
	"context"
	"time"
)

type PublicHolidayService interface {
	// ListByYear tries the holiday API, then the cache, then the built-in list.
	ListByYear(ctx context.Context, year int) ([]PublicHoliday, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]PublicHoliday, error)
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
