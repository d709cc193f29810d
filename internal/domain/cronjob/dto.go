package cronjob

import (
	"fmt"
	"time"

	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

const maxNotificationDays = 365

type CreateConfigRequest struct {
	Name             string `json:"name"`
	Enabled          *bool  `json:"enabled,omitempty"`
	ScheduleTime     string `json:"scheduleTime"`
	WebhookURL       string `json:"webhookUrl"`
	NotificationDays *int   `json:"notificationDays,omitempty"`
	NotificationType string `json:"notificationType,omitempty"`
	WeeklyDays       []int  `json:"weeklyDays,omitempty"`
	WeeklyScope      string `json:"weeklyScope,omitempty"`
}

func (r *CreateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidClock(r.ScheduleTime) {
		errs = append(errs, validator.ValidationError{Field: "scheduleTime", Message: "scheduleTime must be HH:MM"})
	}
	if !validator.IsValidWebhookURL(r.WebhookURL) {
		errs = append(errs, validator.ValidationError{Field: "webhookUrl", Message: "webhookUrl must be an http(s) URL"})
	}
	if r.NotificationDays != nil {
		validateDays(*r.NotificationDays, &errs)
	}
	if r.NotificationType != "" {
		validateType(r.NotificationType, &errs)
	}
	if r.WeeklyScope != "" {
		validateScope(r.WeeklyScope, &errs)
	}
	validateWeeklyDays(r.WeeklyDays, &errs)
	if NotificationType(r.NotificationType) == NotificationTypeWeekly && len(r.WeeklyDays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "weeklyDays", Message: "weekly notifications need at least one day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity applies defaults: enabled, 1 day ahead, daily, current week.
func (r *CreateConfigRequest) ToEntity() Config {
	cfg := Config{
		Name:             r.Name,
		Enabled:          true,
		ScheduleTime:     r.ScheduleTime,
		WebhookURL:       r.WebhookURL,
		NotificationDays: 1,
		NotificationType: NotificationTypeDaily,
		WeeklyDays:       r.WeeklyDays,
		WeeklyScope:      WeeklyScopeCurrent,
	}
	if r.Enabled != nil {
		cfg.Enabled = *r.Enabled
	}
	if r.NotificationDays != nil {
		cfg.NotificationDays = *r.NotificationDays
	}
	if r.NotificationType != "" {
		cfg.NotificationType = NotificationType(r.NotificationType)
	}
	if r.WeeklyScope != "" {
		cfg.WeeklyScope = WeeklyScope(r.WeeklyScope)
	}
	if cfg.WeeklyDays == nil {
		cfg.WeeklyDays = []int{}
	}
	return cfg
}

type UpdateConfigRequest struct {
	Name             *string `json:"name,omitempty"`
	Enabled          *bool   `json:"enabled,omitempty"`
	ScheduleTime     *string `json:"scheduleTime,omitempty"`
	WebhookURL       *string `json:"webhookUrl,omitempty"`
	NotificationDays *int    `json:"notificationDays,omitempty"`
	NotificationType *string `json:"notificationType,omitempty"`
	WeeklyDays       []int   `json:"weeklyDays,omitempty"`
	WeeklyScope      *string `json:"weeklyScope,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.ScheduleTime != nil && !validator.IsValidClock(*r.ScheduleTime) {
		errs = append(errs, validator.ValidationError{Field: "scheduleTime", Message: "scheduleTime must be HH:MM"})
	}
	if r.WebhookURL != nil && !validator.IsValidWebhookURL(*r.WebhookURL) {
		errs = append(errs, validator.ValidationError{Field: "webhookUrl", Message: "webhookUrl must be an http(s) URL"})
	}
	if r.NotificationDays != nil {
		validateDays(*r.NotificationDays, &errs)
	}
	if r.NotificationType != nil {
		validateType(*r.NotificationType, &errs)
	}
	if r.WeeklyScope != nil {
		validateScope(*r.WeeklyScope, &errs)
	}
	validateWeeklyDays(r.WeeklyDays, &errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request onto a stored config. Call after Validate.
func (r *UpdateConfigRequest) Apply(c *Config) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Enabled != nil {
		c.Enabled = *r.Enabled
	}
	if r.ScheduleTime != nil {
		c.ScheduleTime = *r.ScheduleTime
	}
	if r.WebhookURL != nil {
		c.WebhookURL = *r.WebhookURL
	}
	if r.NotificationDays != nil {
		c.NotificationDays = *r.NotificationDays
	}
	if r.NotificationType != nil {
		c.NotificationType = NotificationType(*r.NotificationType)
	}
	if r.WeeklyDays != nil {
		c.WeeklyDays = r.WeeklyDays
	}
	if r.WeeklyScope != nil {
		c.WeeklyScope = WeeklyScope(*r.WeeklyScope)
	}
}

func validateDays(days int, errs *validator.ValidationErrors) {
	if days < 0 || days > maxNotificationDays {
		*errs = append(*errs, validator.ValidationError{Field: "notificationDays", Message: fmt.Sprintf("notificationDays must be between 0 and %d", maxNotificationDays)})
	}
}

func validateType(t string, errs *validator.ValidationErrors) {
	if !validator.IsInSlice(t, []string{string(NotificationTypeDaily), string(NotificationTypeWeekly)}) {
		*errs = append(*errs, validator.ValidationError{Field: "notificationType", Message: "notificationType must be daily or weekly"})
	}
}

func validateScope(s string, errs *validator.ValidationErrors) {
	if !validator.IsInSlice(s, []string{string(WeeklyScopeCurrent), string(WeeklyScopeNext)}) {
		*errs = append(*errs, validator.ValidationError{Field: "weeklyScope", Message: "weeklyScope must be current or next"})
	}
}

func validateWeeklyDays(days []int, errs *validator.ValidationErrors) {
	for _, d := range days {
		if d < 0 || d > 6 {
			*errs = append(*errs, validator.ValidationError{Field: "weeklyDays", Message: "weeklyDays must contain values 0 (Sunday) to 6 (Saturday)"})
			return
		}
	}
}

type TestRequest struct {
	CustomMessage string `json:"customMessage,omitempty"`
}

type ConfigResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Enabled          bool   `json:"enabled"`
	ScheduleTime     string `json:"scheduleTime"`
	WebhookURL       string `json:"webhookUrl"`
	NotificationDays int    `json:"notificationDays"`
	NotificationType string `json:"notificationType"`
	WeeklyDays       []int  `json:"weeklyDays"`
	WeeklyScope      string `json:"weeklyScope"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

func ToResponse(c Config) ConfigResponse {
	days := c.WeeklyDays
	if days == nil {
		days = []int{}
	}
	return ConfigResponse{
		ID:               c.ID,
		Name:             c.Name,
		Enabled:          c.Enabled,
		ScheduleTime:     c.ScheduleTime,
		WebhookURL:       c.WebhookURL,
		NotificationDays: c.NotificationDays,
		NotificationType: string(c.NotificationType),
		WeeklyDays:       days,
		WeeklyScope:      string(c.WeeklyScope),
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(cs []Config) []ConfigResponse {
	out := make([]ConfigResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToResponse(c))
	}
	return out
}

type JobStatus struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	Type         string `json:"notificationType"`
	Running      bool   `json:"running"`
}

// ExecutionResult reports what a run did.
type ExecutionResult struct {
	ConfigID   int64  `json:"configId"`
	Sent       bool   `json:"sent"`
	EventCount int    `json:"eventCount"`
	Reason     string `json:"reason,omitempty"`
	DeliveryID string `json:"deliveryId,omitempty"`
}
