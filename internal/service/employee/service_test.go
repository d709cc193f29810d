package employee

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/paracal/paracal-backend-go/internal/domain/employee"
	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
	nextID    int64
	lastName  string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, id := range ids {
		if e, ok := f.employees[id]; ok {
			names[id] = e.Name
		}
	}
	return names, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, name string) (employee.Employee, error) {
	f.lastName = name
	f.nextID++
	e := employee.Employee{ID: f.nextID, Name: name}
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id int64, name string) (employee.Employee, error) {
	f.lastName = name
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e.Name = name
	f.employees[id] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func TestCreate_TrimsName(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "  Somchai  "})
	require.NoError(t, err)
	assert.Equal(t, "Somchai", created.Name)
	assert.Equal(t, "Somchai", repo.lastName)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "   "},
		{name: "too long", input: strings.Repeat("a", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: tt.input})
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, "name", verrs[0].Field)
		})
	}
}

func TestInvalidID(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, employee.ErrInvalidID)

	_, err = svc.Update(ctx, -1, employee.UpdateEmployeeRequest{Name: "A"})
	assert.ErrorIs(t, err, employee.ErrInvalidID)

	assert.ErrorIs(t, svc.Delete(ctx, 0), employee.ErrInvalidID)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Nok"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Name: "Nok P."})
	require.NoError(t, err)
	assert.Equal(t, "Nok P.", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), employee.ErrEmployeeNotFound)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
