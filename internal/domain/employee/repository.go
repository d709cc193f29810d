package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	// GetNamesByIDs returns current names keyed by id. Unknown ids are absent from the map.
	GetNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	Create(ctx context.Context, name string) (Employee, error)
	Update(ctx context.Context, id int64, name string) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
