package cronjob

import "context"

type ConfigRepository interface {
	// List returns configs ordered by schedule time.
	List(ctx context.Context) ([]Config, error)
	ListEnabled(ctx context.Context) ([]Config, error)
	GetByID(ctx context.Context, id int64) (Config, error)
	Create(ctx context.Context, c Config) (Config, error)
	Update(ctx context.Context, c Config) (Config, error)
	Delete(ctx context.Context, id int64) error
}
