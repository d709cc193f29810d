package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.CompanyHoliday, error) {
	return s.holidayRepo.List(ctx, nil, nil)
}

// ListByYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.CompanyHoliday, error) {
	from, to := utils.YearBounds(year)
	return s.holidayRepo.List(ctx, &from, &to)
}

// ListByRange implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListByRange(ctx context.Context, from, to time.Time) ([]holiday.CompanyHoliday, error) {
	if from.After(to) {
		return nil, holiday.ErrInvalidRange
	}
	return s.holidayRepo.List(ctx, &from, &to)
}

// GetByID implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetByID(ctx context.Context, id int64) (holiday.CompanyHoliday, error) {
	if id <= 0 {
		return holiday.CompanyHoliday{}, holiday.ErrInvalidID
	}
	return s.holidayRepo.GetByID(ctx, id)
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.CompanyHoliday, error) {
	if err := req.Validate(); err != nil {
		return holiday.CompanyHoliday{}, err
	}

	h := req.ToEntity()
	h.Name = strings.TrimSpace(h.Name)
	created, err := s.holidayRepo.Create(ctx, h)
	if err != nil {
		return holiday.CompanyHoliday{}, fmt.Errorf("create company holiday: %w", err)
	}

	slog.Info("Company holiday created", "holiday_id", created.ID, "date", utils.FormatDate(created.Date))
	return created, nil
}

// CreateBulk implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateBulk(ctx context.Context, req holiday.BulkCreateHolidayRequest) ([]holiday.CompanyHoliday, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hs := make([]holiday.CompanyHoliday, 0, len(req.Holidays))
	for i := range req.Holidays {
		h := req.Holidays[i].ToEntity()
		h.Name = strings.TrimSpace(h.Name)
		hs = append(hs, h)
	}

	created, err := s.holidayRepo.CreateBulk(ctx, hs)
	if err != nil {
		return nil, fmt.Errorf("create company holidays: %w", err)
	}

	slog.Info("Company holidays created", "count", len(created))
	return created, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, id int64, req holiday.UpdateHolidayRequest) (holiday.CompanyHoliday, error) {
	if id <= 0 {
		return holiday.CompanyHoliday{}, holiday.ErrInvalidID
	}
	if err := req.Validate(); err != nil {
		return holiday.CompanyHoliday{}, err
	}

	existing, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.CompanyHoliday{}, err
	}
	req.Apply(&existing)

	return s.holidayRepo.Update(ctx, existing)
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return holiday.ErrInvalidID
	}
	return s.holidayRepo.Delete(ctx, id)
}

// DeleteAll implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.holidayRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	slog.Warn("Company holidays cleared", "deleted", deleted)
	return deleted, nil
}

// IsHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return s.holidayRepo.ExistsOn(ctx, date)
}
