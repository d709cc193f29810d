package event

import (
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

func leaveTypeError() validator.ValidationError {
	names := make([]string, 0, len(leaveTypes))
	for _, lt := range LeaveTypes() {
		names = append(names, string(lt))
	}
	return validator.ValidationError{Field: "leaveType", Message: "leaveType must be one of: " + strings.Join(names, ", ")}
}

type CreateEventRequest struct {
	EmployeeID int64  `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	// Date is accepted from older clients that only send single-day events.
	Date        string  `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, leaveTypeError())
	}

	if validator.IsEmpty(r.StartDate) && validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate is required"})
	}
	start := validator.ParseOptionalDate("startDate", r.startString(), &errs)
	end := validator.ParseOptionalDate("endDate", r.EndDate, &errs)
	if start != nil && end != nil && start.After(*end) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be on or after startDate"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEventRequest) startString() string {
	if !validator.IsEmpty(r.StartDate) {
		return r.StartDate
	}
	return r.Date
}

// Range returns the parsed span. EndDate defaults to the start. Call after Validate.
func (r *CreateEventRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.startString())
	end := start
	if !validator.IsEmpty(r.EndDate) {
		end, _ = validator.IsValidDate(r.EndDate)
	}
	return start, end
}

// UpdateEventRequest is a partial update. Nil fields keep their stored value.
type UpdateEventRequest struct {
	EmployeeID  *int64  `json:"employeeId,omitempty"`
	LeaveType   *string `json:"leaveType,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != nil && *r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId must be positive"})
	}
	if r.LeaveType != nil && !LeaveType(*r.LeaveType).IsValid() {
		errs = append(errs, leaveTypeError())
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request onto a stored event. Call after Validate.
func (r *UpdateEventRequest) Apply(e *LeaveEvent) {
	if r.EmployeeID != nil {
		e.EmployeeID = *r.EmployeeID
	}
	if r.LeaveType != nil {
		e.LeaveType = LeaveType(*r.LeaveType)
	}
	if r.StartDate != nil {
		e.StartDate, _ = validator.IsValidDate(*r.StartDate)
	}
	if r.EndDate != nil {
		e.EndDate, _ = validator.IsValidDate(*r.EndDate)
	}
	if r.Description != nil {
		e.Description = r.Description
	}
}

type EventResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	LeaveType    string  `json:"leaveType"`
	Date         *string `json:"date,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Description  *string `json:"description,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func ToResponse(e LeaveEvent) EventResponse {
	start, end := e.EffectiveRange()
	resp := EventResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		LeaveType:    string(e.LeaveType),
		StartDate:    start.Format(validator.DateLayout),
		EndDate:      end.Format(validator.DateLayout),
		Description:  e.Description,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
	if start.Equal(end) {
		d := start.Format(validator.DateLayout)
		resp.Date = &d
	}
	return resp
}

func ToResponses(events []LeaveEvent) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToResponse(e))
	}
	return out
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type Stats struct {
	Total       int64            `json:"total"`
	ByLeaveType map[string]int64 `json:"byLeaveType"`
	ByMonth     []MonthCount     `json:"byMonth"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
