package holiday

import (
	"context"
	"time"
)

type HolidayService interface {
	List(ctx context.Context) ([]CompanyHoliday, error)
	ListByYear(ctx context.Context, year int) ([]CompanyHoliday, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]CompanyHoliday, error)
	GetByID(ctx context.Context, id int64) (CompanyHoliday, error)
	Create(ctx context.Context, req CreateHolidayRequest) (CompanyHoliday, error)
	// CreateBulk inserts all holidays in one transaction.
	CreateBulk(ctx context.Context, req BulkCreateHolidayRequest) ([]CompanyHoliday, error)
	Update(ctx context.Context, id int64, req UpdateHolidayRequest) (CompanyHoliday, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
