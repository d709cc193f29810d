package cron

import (
	"context"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
)

const dispatchJobName = "dispatch_scheduled_notifications"

// NotificationJobs polls the cronjob configs and sends the ones due this minute.
type NotificationJobs struct {
	cronjobService cronjob.CronjobService
	interval       time.Duration
}

func NewNotificationJobs(cronjobService cronjob.CronjobService, interval time.Duration) *NotificationJobs {
	return &NotificationJobs{
		cronjobService: cronjobService,
		interval:       interval,
	}
}

func (j *NotificationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(dispatchJobName, j.interval, j.DispatchScheduledNotifications)
}

// DispatchScheduledNotifications runs every enabled config whose schedule time is now.
func (j *NotificationJobs) DispatchScheduledNotifications(ctx context.Context) error {
	return j.cronjobService.CheckAndExecuteScheduled(ctx)
}
