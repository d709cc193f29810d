package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
)

const cronjobColumns = `id, name, enabled, schedule_time, webhook_url, notification_days,
	notification_type, weekly_days, weekly_scope, created_at, updated_at`

type cronjobRepositoryImpl struct {
	db *database.DB
}

func NewCronjobRepository(db *database.DB) cronjob.ConfigRepository {
	return &cronjobRepositoryImpl{db: db}
}

func scanCronjob(row pgx.Row) (cronjob.Config, error) {
	var (
		c                cronjob.Config
		notificationType string
		weeklyScope      string
		weeklyDays       []int32
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Enabled, &c.ScheduleTime, &c.WebhookURL, &c.NotificationDays,
		&notificationType, &weeklyDays, &weeklyScope, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return cronjob.Config{}, err
	}
	c.NotificationType = cronjob.NotificationType(notificationType)
	c.WeeklyScope = cronjob.WeeklyScope(weeklyScope)
	c.WeeklyDays = make([]int, 0, len(weeklyDays))
	for _, d := range weeklyDays {
		c.WeeklyDays = append(c.WeeklyDays, int(d))
	}
	return c, nil
}

func weeklyDaysArg(days []int) []int32 {
	out := make([]int32, 0, len(days))
	for _, d := range days {
		out = append(out, int32(d))
	}
	return out
}

func (r *cronjobRepositoryImpl) list(ctx context.Context, onlyEnabled bool) ([]cronjob.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cronjobColumns + ` FROM cronjob_configs`
	if onlyEnabled {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY schedule_time ASC, id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cronjob configs: %w", err)
	}
	defer rows.Close()

	configs := make([]cronjob.Config, 0)
	for rows.Next() {
		c, err := scanCronjob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cronjob config: %w", err)
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

// List implements cronjob.ConfigRepository.
func (r *cronjobRepositoryImpl) List(ctx context.Context) ([]cronjob.Config, error) {
	return r.list(ctx, false)
}

// ListEnabled implements cronjob.ConfigRepository.
func (r *cronjobRepositoryImpl) ListEnabled(ctx context.Context) ([]cronjob.Config, error) {
	return r.list(ctx, true)
}

// GetByID implements cronjob.ConfigRepository.
func (r *cronjobRepositoryImpl) GetByID(ctx context.Context, id int64) (cronjob.Config, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCronjob(q.QueryRow(ctx, `SELECT `+cronjobColumns+` FROM cronjob_configs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cronjob.Config{}, cronjob.ErrConfigNotFound
		}
		return cronjob.Config{}, fmt.Errorf("failed to get cronjob config with id %d: %w", id, err)
	}
	return c, nil
}

// Create implements cronjob.ConfigRepository.
func (r *cronjobRepositoryImpl) Create(ctx context.Context, c cronjob.Config) (cronjob.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cronjob_configs (
			name, enabled, schedule_time, webhook_url, notification_days,
			notification_type, weekly_days, weekly_scope
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + cronjobColumns

	created, err := scanCronjob(q.QueryRow(ctx, query,
		c.Name, c.Enabled, c.ScheduleTime, c.WebhookURL, c.NotificationDays,
		string(c.NotificationType), weeklyDaysArg(c.WeeklyDays), string(c.WeeklyScope),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return cronjob.Config{}, cronjob.ErrConfigNameExists
		}
		return cronjob.Config{}, fmt.Errorf("failed to create cronjob config: %w", err)
	}
	return created, nil
}

// Update implements cronjob.ConfigRepository.
func (r *cronjobRepositoryImpl) Update(ctx context.Context, c cronjob.Config) (cronjob.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cronjob_configs
		SET name = $1, enabled = $2, schedule_time = $3, webhook_url = $4, notification_days = $5,
			notification_type = $6, weekly_days = $7, weekly_scope = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + cronjobColumns

	updated, err := scanCronjob(q.QueryRow(ctx, query,
		c.Name, c.Enabled, c.ScheduleTime, c.WebhookURL, c.NotificationDays,
		string(c.NotificationType), weeklyDaysArg(c.WeeklyDays), string(c.WeeklyScope), c.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cronjob.Config{}, cronjob.ErrConfigNotFound
		}
		if isUniqueViolation(err) {
			return cronjob.Config{}, cronjob.ErrConfigNameExists
		}
		return cronjob.Config{}, fmt.Errorf("failed to update cronjob config with id %d: %w", c.ID, err)
	}
	return updated, nil
}

// Delete implements cronjob.ConfigRepository.
func (r *cronjobRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cronjob_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cronjob config with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return cronjob.ErrConfigNotFound
	}
	return nil
}
