package cronjob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
	"github.com/paracal/paracal-backend-go/internal/pkg/webhook"
)

const (
	reasonNotScheduledDay = "not a scheduled weekday"
	reasonNoEvents        = "no events"
)

type CronjobServiceImpl struct {
	configRepo  cronjob.ConfigRepository
	eventRepo   event.EventRepository
	holidayRepo holiday.HolidayRepository
	sender      webhook.Sender
	loc         *time.Location
	now         func() time.Time

	mu            sync.Mutex
	lastExecution map[string]struct{}
}

func NewCronjobService(
	configRepo cronjob.ConfigRepository,
	eventRepo event.EventRepository,
	holidayRepo holiday.HolidayRepository,
	sender webhook.Sender,
	loc *time.Location,
) cronjob.CronjobService {
	return &CronjobServiceImpl{
		configRepo:    configRepo,
		eventRepo:     eventRepo,
		holidayRepo:   holidayRepo,
		sender:        sender,
		loc:           loc,
		now:           time.Now,
		lastExecution: make(map[string]struct{}),
	}
}

// List implements cronjob.CronjobService.
func (s *CronjobServiceImpl) List(ctx context.Context) ([]cronjob.Config, error) {
	return s.configRepo.List(ctx)
}

// GetByID implements cronjob.CronjobService.
func (s *CronjobServiceImpl) GetByID(ctx context.Context, id int64) (cronjob.Config, error) {
	if id <= 0 {
		return cronjob.Config{}, cronjob.ErrInvalidID
	}
	return s.configRepo.GetByID(ctx, id)
}

// Create implements cronjob.CronjobService.
func (s *CronjobServiceImpl) Create(ctx context.Context, req cronjob.CreateConfigRequest) (cronjob.Config, error) {
	if err := req.Validate(); err != nil {
		return cronjob.Config{}, err
	}

	cfg := req.ToEntity()
	cfg.Name = strings.TrimSpace(cfg.Name)
	created, err := s.configRepo.Create(ctx, cfg)
	if err != nil {
		return cronjob.Config{}, err
	}

	slog.Info("Cronjob config created", "config_id", created.ID, "name", created.Name, "schedule_time", created.ScheduleTime)
	return created, nil
}

// Update implements cronjob.CronjobService.
func (s *CronjobServiceImpl) Update(ctx context.Context, id int64, req cronjob.UpdateConfigRequest) (cronjob.Config, error) {
	if id <= 0 {
		return cronjob.Config{}, cronjob.ErrInvalidID
	}
	if err := req.Validate(); err != nil {
		return cronjob.Config{}, err
	}

	existing, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return cronjob.Config{}, err
	}
	req.Apply(&existing)

	updated, err := s.configRepo.Update(ctx, existing)
	if err != nil {
		return cronjob.Config{}, err
	}

	slog.Info("Cronjob config updated", "config_id", updated.ID, "enabled", updated.Enabled)
	return updated, nil
}

// Delete implements cronjob.CronjobService.
func (s *CronjobServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return cronjob.ErrInvalidID
	}
	return s.configRepo.Delete(ctx, id)
}

// Status implements cronjob.CronjobService.
func (s *CronjobServiceImpl) Status(ctx context.Context) ([]cronjob.JobStatus, error) {
	configs, err := s.configRepo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]cronjob.JobStatus, 0, len(configs))
	for _, c := range configs {
		statuses = append(statuses, cronjob.JobStatus{
			ID:           c.ID,
			Name:         c.Name,
			ScheduleTime: c.ScheduleTime,
			Type:         string(c.NotificationType),
			Running:      true,
		})
	}
	return statuses, nil
}

// Execute implements cronjob.CronjobService.
func (s *CronjobServiceImpl) Execute(ctx context.Context, cfg cronjob.Config) (cronjob.ExecutionResult, error) {
	return s.run(ctx, cfg, "", false)
}

// Test implements cronjob.CronjobService.
func (s *CronjobServiceImpl) Test(ctx context.Context, id int64, customMessage string) (cronjob.ExecutionResult, error) {
	cfg, err := s.GetByID(ctx, id)
	if err != nil {
		return cronjob.ExecutionResult{}, err
	}
	return s.run(ctx, cfg, customMessage, true)
}

// run builds and sends the notification. force skips the weekday and empty-day checks.
func (s *CronjobServiceImpl) run(ctx context.Context, cfg cronjob.Config, customMessage string, force bool) (cronjob.ExecutionResult, error) {
	today := utils.DateOf(s.now(), s.loc)
	result := cronjob.ExecutionResult{ConfigID: cfg.ID}

	var msg webhook.Message
	switch cfg.NotificationType {
	case cronjob.NotificationTypeWeekly:
		if !force && !cfg.FiresOn(today.Weekday()) {
			result.Reason = reasonNotScheduledDay
			return result, nil
		}
		weekStart, weekEnd := utils.WeekBounds(today)
		if cfg.WeeklyScope == cronjob.WeeklyScopeNext {
			weekStart, weekEnd = utils.AddDays(weekStart, 7), utils.AddDays(weekEnd, 7)
		}
		events, err := s.eventRepo.Find(ctx, event.Filter{From: &weekStart, To: &weekEnd})
		if err != nil {
			return result, fmt.Errorf("list events for week of %s: %w", utils.FormatDate(weekStart), err)
		}
		result.EventCount = len(events)
		msg = WeeklyMessage(weekStart, weekEnd, events, customMessage)

	default:
		target := utils.AddDays(today, cfg.NotificationDays)
		events, err := s.eventRepo.Find(ctx, event.Filter{From: &target, To: &target})
		if err != nil {
			return result, fmt.Errorf("list events for %s: %w", utils.FormatDate(target), err)
		}
		result.EventCount = len(events)
		if !force && len(events) == 0 {
			result.Reason = reasonNoEvents
			return result, nil
		}
		msg = DailyMessage(target, events, customMessage)
	}

	deliveryID, err := s.sender.Send(ctx, cfg.WebhookURL, msg)
	if err != nil {
		return result, fmt.Errorf("%w: %w", cronjob.ErrDeliveryFailed, err)
	}
	result.Sent = true
	result.DeliveryID = deliveryID

	slog.Info("Notification sent",
		"config_id", cfg.ID,
		"type", cfg.NotificationType,
		"event_count", result.EventCount,
		"delivery_id", deliveryID,
	)
	return result, nil
}

// CheckAndExecuteScheduled implements cronjob.CronjobService.
// Each config runs at most once per date and minute.
func (s *CronjobServiceImpl) CheckAndExecuteScheduled(ctx context.Context) error {
	now := s.now().In(s.loc)
	today := utils.DateOf(now, s.loc)

	if utils.IsWeekend(today) {
		return nil
	}
	isHoliday, err := s.holidayRepo.ExistsOn(ctx, today)
	if err != nil {
		return fmt.Errorf("check company holiday: %w", err)
	}
	if isHoliday {
		slog.Debug("Skipping notifications on company holiday", "date", utils.FormatDate(today))
		return nil
	}

	configs, err := s.configRepo.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("list enabled cronjob configs: %w", err)
	}

	clock := now.Format("15:04")
	dateKey := utils.FormatDate(today)

	var errs []error
	for _, cfg := range configs {
		if cfg.ScheduleTime != clock {
			continue
		}
		if !s.markExecuted(fmt.Sprintf("%d-%s-%s", cfg.ID, dateKey, clock), dateKey) {
			continue
		}

		result, err := s.Execute(ctx, cfg)
		if err != nil {
			slog.Error("Scheduled notification failed", "config_id", cfg.ID, "name", cfg.Name, "error", err)
			errs = append(errs, fmt.Errorf("config %d: %w", cfg.ID, err))
			continue
		}
		if !result.Sent {
			slog.Info("Scheduled notification skipped", "config_id", cfg.ID, "reason", result.Reason)
		}
	}

	return errors.Join(errs...)
}

// markExecuted records key and reports whether it was new. Keys from earlier days are dropped.
func (s *CronjobServiceImpl) markExecuted(key, dateKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, done := s.lastExecution[key]; done {
		return false
	}
	for k := range s.lastExecution {
		if !strings.Contains(k, "-"+dateKey+"-") {
			delete(s.lastExecution, k)
		}
	}
	s.lastExecution[key] = struct{}{}
	return true
}
