package cronjob

import "time"

type NotificationType string

const (
	NotificationTypeDaily  NotificationType = "daily"
	NotificationTypeWeekly NotificationType = "weekly"
)

type WeeklyScope string

const (
	WeeklyScopeCurrent WeeklyScope = "current"
	WeeklyScopeNext    WeeklyScope = "next"
)

// Config is a scheduled webhook notification.
type Config struct {
	ID      int64
	Name    string
	Enabled bool
	// ScheduleTime is the local HH:MM at which the notification fires.
	ScheduleTime string
	WebhookURL   string
	// NotificationDays is the look-ahead for daily notifications.
	NotificationDays int
	NotificationType NotificationType
	// WeeklyDays lists the weekdays (0 = Sunday) on which weekly notifications fire.
	WeeklyDays  []int
	WeeklyScope WeeklyScope
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FiresOn reports whether a weekly config is due on the given weekday.
func (c Config) FiresOn(wd time.Weekday) bool {
	for _, d := range c.WeeklyDays {
		if d == int(wd) {
			return true
		}
	}
	return false
}
