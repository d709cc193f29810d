package cronjob

import "context"

type CronjobService interface {
	List(ctx context.Context) ([]Config, error)
	GetByID(ctx context.Context, id int64) (Config, error)
	Create(ctx context.Context, req CreateConfigRequest) (Config, error)
	Update(ctx context.Context, id int64, req UpdateConfigRequest) (Config, error)
	Delete(ctx context.Context, id int64) error
	Status(ctx context.Context) ([]JobStatus, error)

	// Execute runs one config now, applying the daily or weekly rules.
	Execute(ctx context.Context, cfg Config) (ExecutionResult, error)
	// Test sends the notification for a config even when no event is due.
	Test(ctx context.Context, id int64, customMessage string) (ExecutionResult, error)
	// CheckAndExecuteScheduled runs every enabled config due at the current minute.
	CheckAndExecuteScheduled(ctx context.Context) error
}
