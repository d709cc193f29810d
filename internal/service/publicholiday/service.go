package publicholiday

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/publicholiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/calendarific"
)

// maxRangeYears bounds how many yearly lookups a range request may trigger.
const maxRangeYears = 5

var errNoHolidays = errors.New("holiday API returned no holidays")

// holidayAPI is satisfied by *calendarific.Client.
type holidayAPI interface {
	Holidays(ctx context.Context, year int) ([]calendarific.Holiday, error)
}

var relevantPrimaryTypes = map[string]bool{
	"National holiday":  true,
	"Public holiday":    true,
	"Buddhist holiday":  true,
	"Religious holiday": true,
}

type PublicHolidayServiceImpl struct {
	api  holidayAPI
	repo publicholiday.PublicHolidayRepository
}

func NewPublicHolidayService(api holidayAPI, repo publicholiday.PublicHolidayRepository) publicholiday.PublicHolidayService {
	return &PublicHolidayServiceImpl{api: api, repo: repo}
}

// ListByYear implements publicholiday.PublicHolidayService.
// A broken API or cache degrades to the built-in list, so it never fails.
func (s *PublicHolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]publicholiday.PublicHoliday, error) {
	holidays, err := s.fetch(ctx, year)
	if err == nil {
		slog.Info("Fetched public holidays", "year", year, "count", len(holidays))
		s.save(ctx, year, publicholiday.SourceAPI, holidays)
		return holidays, nil
	}
	slog.Warn("Public holiday API unavailable", "year", year, "error", err)

	cached, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		slog.Error("Failed to read cached public holidays", "year", year, "error", err)
	} else if len(cached) > 0 {
		slog.Info("Using cached public holidays", "year", year, "count", len(cached))
		return cached, nil
	}

	defaults := publicholiday.Defaults(year)
	slog.Warn("Using built-in public holidays", "year", year, "count", len(defaults))
	s.save(ctx, year, publicholiday.SourceFallback, defaults)
	return defaults, nil
}

// ListByRange implements publicholiday.PublicHolidayService.
func (s *PublicHolidayServiceImpl) ListByRange(ctx context.Context, from, to time.Time) ([]publicholiday.PublicHoliday, error) {
	if from.After(to) {
		return nil, publicholiday.ErrInvalidRange
	}
	if to.Year()-from.Year() >= maxRangeYears {
		return nil, publicholiday.ErrRangeTooLarge
	}

	result := make([]publicholiday.PublicHoliday, 0)
	for year := from.Year(); year <= to.Year(); year++ {
		holidays, err := s.ListByYear(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, h := range holidays {
			if !h.Date.Before(from) && !h.Date.After(to) {
				result = append(result, h)
			}
		}
	}
	return result, nil
}

// IsHoliday implements publicholiday.PublicHolidayService.
func (s *PublicHolidayServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	holidays, err := s.ListByYear(ctx, date.Year())
	if err != nil {
		return false, err
	}
	for _, h := range holidays {
		if h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *PublicHolidayServiceImpl) fetch(ctx context.Context, year int) ([]publicholiday.PublicHoliday, error) {
	raw, err := s.api.Holidays(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errNoHolidays
	}

	holidays := make([]publicholiday.PublicHoliday, 0, len(raw))
	for _, h := range raw {
		if !relevantPrimaryTypes[h.PrimaryType] {
			continue
		}
		holidays = append(holidays, publicholiday.PublicHoliday{
			Date: h.Date,
			Name: h.Name,
			Type: holidayType(h.PrimaryType),
		})
	}
	sort.SliceStable(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })
	return holidays, nil
}

func holidayType(primaryType string) publicholiday.Type {
	lower := strings.ToLower(primaryType)
	if strings.Contains(lower, "national") || strings.Contains(lower, "public") {
		return publicholiday.TypePublic
	}
	return publicholiday.TypeReligious
}

// save refreshes the cache. Failures are only logged.
func (s *PublicHolidayServiceImpl) save(ctx context.Context, year int, source publicholiday.Source, holidays []publicholiday.PublicHoliday) {
	if err := s.repo.ReplaceYear(ctx, year, source, holidays); err != nil {
		slog.Error("Failed to cache public holidays", "year", year, "source", source, "error", err)
	}
}
