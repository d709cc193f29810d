package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	// Update renames the employee. Names already copied onto past events are left as they were.
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error)
	// Delete removes the employee together with all of their events.
	Delete(ctx context.Context, id int64) error
}
