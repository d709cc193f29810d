package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
)

const holidayColumns = `id, name, date, description, created_at, updated_at`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (holiday.CompanyHoliday, error) {
	var h holiday.CompanyHoliday
	err := row.Scan(&h.ID, &h.Name, &h.Date, &h.Description, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, from, to *time.Time) ([]holiday.CompanyHoliday, error) {
	q := GetQuerier(ctx, r.db)

	var (
		whereClauses []string
		args         []interface{}
		argIdx       = 1
	)
	if from != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *to)
	}

	query := `SELECT ` + holidayColumns + ` FROM company_holidays`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY date ASC, id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list company holidays: %w", err)
	}
	defer rows.Close()

	holidays := make([]holiday.CompanyHoliday, 0)
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id int64) (holiday.CompanyHoliday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM company_holidays WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.CompanyHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.CompanyHoliday{}, fmt.Errorf("failed to get company holiday with id %d: %w", id, err)
	}
	return h, nil
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.CompanyHoliday) (holiday.CompanyHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_holidays (name, date, description)
		VALUES ($1, $2, $3)
		RETURNING ` + holidayColumns

	created, err := scanHoliday(q.QueryRow(ctx, query, h.Name, h.Date, h.Description))
	if err != nil {
		return holiday.CompanyHoliday{}, fmt.Errorf("failed to create company holiday: %w", err)
	}
	return created, nil
}

// CreateBulk implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) CreateBulk(ctx context.Context, hs []holiday.CompanyHoliday) ([]holiday.CompanyHoliday, error) {
	created := make([]holiday.CompanyHoliday, 0, len(hs))
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for _, h := range hs {
			c, err := r.Create(txCtx, h)
			if err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.CompanyHoliday) (holiday.CompanyHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE company_holidays
		SET name = $1, date = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + holidayColumns

	updated, err := scanHoliday(q.QueryRow(ctx, query, h.Name, h.Date, h.Description, h.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.CompanyHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.CompanyHoliday{}, fmt.Errorf("failed to update company holiday with id %d: %w", h.ID, err)
	}
	return updated, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM company_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company holiday with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// DeleteAll implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM company_holidays`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear company holidays: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ExistsOn implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ExistsOn(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM company_holidays WHERE date = $1)`, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check company holiday: %w", err)
	}
	return exists, nil
}
