package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/publicholiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
)

type publicHolidayRepositoryImpl struct {
	db *database.DB
}

func NewPublicHolidayRepository(db *database.DB) publicholiday.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db}
}

// ListByYear implements publicholiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]publicholiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name, type
		FROM thai_holidays
		WHERE year = $1
		ORDER BY date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays for %d: %w", year, err)
	}
	defer rows.Close()

	holidays := make([]publicholiday.PublicHoliday, 0)
	for rows.Next() {
		var (
			h   publicholiday.PublicHoliday
			typ string
		)
		if err := rows.Scan(&h.Date, &h.Name, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan public holiday: %w", err)
		}
		h.Type = publicholiday.Type(typ)
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// ReplaceYear implements publicholiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) ReplaceYear(ctx context.Context, year int, source publicholiday.Source, hs []publicholiday.PublicHoliday) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM thai_holidays WHERE year = $1`, year); err != nil {
			return fmt.Errorf("failed to clear public holidays for %d: %w", year, err)
		}
		if len(hs) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, h := range hs {
			batch.Queue(
				`INSERT INTO thai_holidays (name, date, type, year, source) VALUES ($1, $2, $3, $4, $5)`,
				h.Name, h.Date, string(h.Type), year, string(source),
			)
		}
		if err := q.SendBatch(txCtx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert public holidays for %d: %w", year, err)
		}
		return nil
	})
}
