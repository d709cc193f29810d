package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/employee"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
)

const eventColumns = `id, employee_id, employee_name, leave_type, date, start_date, end_date, description, created_at, updated_at`

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// buildEventWhere renders filter as a WHERE clause. The range predicate keeps the
// legacy single-day column and the start/end interval as equivalent representations.
func buildEventWhere(filter event.Filter, argIndex int) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)

	switch {
	case filter.From != nil && filter.To != nil:
		clauses = append(clauses, fmt.Sprintf(
			"((date >= $%d AND date <= $%d) OR (start_date <= $%d AND end_date >= $%d))",
			argIndex, argIndex+1, argIndex+1, argIndex,
		))
		args = append(args, *filter.From, *filter.To)
		argIndex += 2
	case filter.From != nil:
		clauses = append(clauses, fmt.Sprintf("(date >= $%d OR end_date >= $%d)", argIndex, argIndex))
		args = append(args, *filter.From)
		argIndex++
	case filter.To != nil:
		clauses = append(clauses, fmt.Sprintf("(date <= $%d OR start_date <= $%d)", argIndex, argIndex))
		args = append(args, *filter.To)
		argIndex++
	}

	if filter.StartedOnOrBefore != nil {
		clauses = append(clauses, fmt.Sprintf("COALESCE(start_date, date) <= $%d", argIndex))
		args = append(args, *filter.StartedOnOrBefore)
		argIndex++
	}
	if filter.EmployeeID != nil {
		clauses = append(clauses, fmt.Sprintf("employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.EmployeeName != nil {
		clauses = append(clauses, fmt.Sprintf("employee_name = $%d", argIndex))
		args = append(args, *filter.EmployeeName)
		argIndex++
	}
	if filter.LeaveType != nil {
		clauses = append(clauses, fmt.Sprintf("leave_type = $%d", argIndex))
		args = append(args, *filter.LeaveType)
		argIndex++
	}
	if filter.Query != nil {
		clauses = append(clauses, fmt.Sprintf("(employee_name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+escapeLike(*filter.Query)+"%")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanEvent(row pgx.Row) (event.LeaveEvent, error) {
	var (
		e                  event.LeaveEvent
		leaveType          string
		startDate, endDate *time.Time
	)
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.EmployeeName, &leaveType, &e.Date,
		&startDate, &endDate, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return event.LeaveEvent{}, err
	}
	e.LeaveType = event.LeaveType(leaveType)
	if startDate != nil {
		e.StartDate = *startDate
	}
	if endDate != nil {
		e.EndDate = *endDate
	}
	return e, nil
}

func collectEvents(rows pgx.Rows) ([]event.LeaveEvent, error) {
	defer rows.Close()

	events := make([]event.LeaveEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Find implements event.EventRepository.
func (r *eventRepositoryImpl) Find(ctx context.Context, filter event.Filter) ([]event.LeaveEvent, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildEventWhere(filter, 1)
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY COALESCE(start_date, date) ASC, id ASC
	`, eventColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return collectEvents(rows)
}

// GetByID implements event.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id int64) (event.LeaveEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	e, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.LeaveEvent{}, event.ErrEventNotFound
		}
		return event.LeaveEvent{}, fmt.Errorf("failed to get event with id %d: %w", id, err)
	}
	return e, nil
}

// Create implements event.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, e event.LeaveEvent) (event.LeaveEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO events (employee_id, employee_name, leave_type, date, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, eventColumns)

	created, err := scanEvent(q.QueryRow(ctx, query,
		e.EmployeeID, e.EmployeeName, string(e.LeaveType), e.Date, e.StartDate, e.EndDate, e.Description,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return event.LeaveEvent{}, fmt.Errorf("employee %d: %w", e.EmployeeID, employee.ErrEmployeeNotFound)
		}
		return event.LeaveEvent{}, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// Update implements event.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, e event.LeaveEvent) (event.LeaveEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE events
		SET employee_id = $1, employee_name = $2, leave_type = $3, date = $4,
			start_date = $5, end_date = $6, description = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING %s
	`, eventColumns)

	updated, err := scanEvent(q.QueryRow(ctx, query,
		e.EmployeeID, e.EmployeeName, string(e.LeaveType), e.Date, e.StartDate, e.EndDate, e.Description, e.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.LeaveEvent{}, event.ErrEventNotFound
		}
		if isForeignKeyViolation(err) {
			return event.LeaveEvent{}, fmt.Errorf("employee %d: %w", e.EmployeeID, employee.ErrEmployeeNotFound)
		}
		return event.LeaveEvent{}, fmt.Errorf("failed to update event with id %d: %w", e.ID, err)
	}
	return updated, nil
}

// Delete implements event.EventRepository.
func (r *eventRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

// Stats implements event.EventRepository.
func (r *eventRepositoryImpl) Stats(ctx context.Context, since time.Time) (event.Stats, error) {
	q := GetQuerier(ctx, r.db)

	stats := event.Stats{
		ByLeaveType: make(map[string]int64),
		ByMonth:     make([]event.MonthCount, 0),
	}

	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&stats.Total); err != nil {
		return event.Stats{}, fmt.Errorf("failed to count events: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT leave_type, COUNT(*) FROM events GROUP BY leave_type`)
	if err != nil {
		return event.Stats{}, fmt.Errorf("failed to count events by leave type: %w", err)
	}
	for rows.Next() {
		var (
			leaveType string
			count     int64
		)
		if err := rows.Scan(&leaveType, &count); err != nil {
			rows.Close()
			return event.Stats{}, err
		}
		stats.ByLeaveType[leaveType] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return event.Stats{}, err
	}

	rows, err = q.Query(ctx, `
		SELECT to_char(COALESCE(start_date, date), 'YYYY-MM') AS month, COUNT(*)
		FROM events
		WHERE COALESCE(start_date, date) >= $1
		GROUP BY month
		ORDER BY month ASC
	`, since)
	if err != nil {
		return event.Stats{}, fmt.Errorf("failed to count events by month: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mc event.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return event.Stats{}, err
		}
		stats.ByMonth = append(stats.ByMonth, mc)
	}

	return stats, rows.Err()
}

// DeleteOverlapping implements event.EventRepository.
func (r *eventRepositoryImpl) DeleteOverlapping(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildEventWhere(event.Filter{From: &from, To: &to}, 1)
	tag, err := q.Exec(ctx, "DELETE FROM events "+whereClause, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events between %s and %s: %w", from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll implements event.EventRepository.
func (r *eventRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all events: %w", err)
	}
	return tag.RowsAffected(), nil
}
