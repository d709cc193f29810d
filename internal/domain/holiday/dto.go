package holiday

import (
	"fmt"
	"time"

	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	r.validateInto("", &errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateHolidayRequest) validateInto(prefix string, errs *validator.ValidationErrors) {
	if validator.IsEmpty(r.Name) {
		*errs = append(*errs, validator.ValidationError{Field: prefix + "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Date) {
		*errs = append(*errs, validator.ValidationError{Field: prefix + "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		*errs = append(*errs, validator.ValidationError{Field: prefix + "date", Message: "must be a date in YYYY-MM-DD format"})
	}
}

// ToEntity converts a validated request.
func (r *CreateHolidayRequest) ToEntity() CompanyHoliday {
	date, _ := validator.IsValidDate(r.Date)
	return CompanyHoliday{Name: r.Name, Date: date, Description: r.Description}
}

type BulkCreateHolidayRequest struct {
	Holidays []CreateHolidayRequest `json:"holidays"`
}

func (r *BulkCreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Holidays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "holidays", Message: "at least one holiday is required"})
	}
	for i := range r.Holidays {
		r.Holidays[i].validateInto(fmt.Sprintf("holidays[%d].", i), &errs)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request onto a stored holiday. Call after Validate.
func (r *UpdateHolidayRequest) Apply(h *CompanyHoliday) {
	if r.Name != nil {
		h.Name = *r.Name
	}
	if r.Date != nil {
		h.Date, _ = validator.IsValidDate(*r.Date)
	}
	if r.Description != nil {
		h.Description = r.Description
	}
}

type HolidayResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func ToResponse(h CompanyHoliday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(validator.DateLayout),
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   h.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(hs []CompanyHoliday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, ToResponse(h))
	}
	return out
}

type CheckResponse struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"isHoliday"`
}
