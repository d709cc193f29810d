package publicholiday

import "context"

// PublicHolidayRepository caches one holiday list per year.
type PublicHolidayRepository interface {
	// ListByYear returns the cached holidays of year ordered by date. An uncached year yields an empty slice.
	ListByYear(ctx context.Context, year int) ([]PublicHoliday, error)
	// ReplaceYear swaps the cached list of year for hs atomically.
	ReplaceYear(ctx context.Context, year int, source Source, hs []PublicHoliday) error
}
