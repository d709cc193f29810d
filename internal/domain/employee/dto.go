package employee

import (
	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

const maxNameLength = 255

type CreateEmployeeRequest struct {
	Name string `json:"name"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validateName(r.Name)
}

type UpdateEmployeeRequest struct {
	Name string `json:"name"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validateName(r.Name)
}

func validateName(name string) error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at most 255 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
