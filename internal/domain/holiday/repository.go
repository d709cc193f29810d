package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// List returns holidays ordered by date. Nil bounds are open.
	List(ctx context.Context, from, to *time.Time) ([]CompanyHoliday, error)
	GetByID(ctx context.Context, id int64) (CompanyHoliday, error)
	Create(ctx context.Context, h CompanyHoliday) (CompanyHoliday, error)
	// CreateBulk inserts all holidays atomically.
	CreateBulk(ctx context.Context, hs []CompanyHoliday) ([]CompanyHoliday, error)
	Update(ctx context.Context, h CompanyHoliday) (CompanyHoliday, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	ExistsOn(ctx context.Context, date time.Time) (bool, error)
}
