package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paracal/paracal-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if id <= 0 {
		return employee.Employee{}, employee.ErrInvalidID
	}
	return s.employeeRepo.GetByID(ctx, id)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employeeRepo.Create(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID)
	return created, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if id <= 0 {
		return employee.Employee{}, employee.ErrInvalidID
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.Update(ctx, id, strings.TrimSpace(req.Name))
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return employee.ErrInvalidID
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Employee deleted", "employee_id", id)
	return nil
}
