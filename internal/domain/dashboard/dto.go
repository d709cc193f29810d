package dashboard

import (
	"time"

	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

// AllLeaveTypes disables the leave-type filter.
const AllLeaveTypes = "all"

// NoMostCommonType is reported when no event matches.
const NoMostCommonType = "N/A"

// UnknownEmployeeName is used when neither the event nor the employee store has a name.
const UnknownEmployeeName = "Unknown"

// SummaryRequest carries the raw query string values.
type SummaryRequest struct {
	StartDate           string
	EndDate             string
	EventType           string
	IncludeFutureEvents string
}

func (r SummaryRequest) Validate() error {
	_, err := r.ToFilter()
	return err
}

// ToFilter parses and validates the request. Only the literal "true" enables future events.
func (r SummaryRequest) ToFilter() (SummaryFilter, error) {
	var errs validator.ValidationErrors
	filter := SummaryFilter{
		StartDate:           validator.ParseOptionalDate("startDate", r.StartDate, &errs),
		EndDate:             validator.ParseOptionalDate("endDate", r.EndDate, &errs),
		LeaveType:           r.EventType,
		IncludeFutureEvents: r.IncludeFutureEvents == "true",
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be on or after startDate"})
	}
	if len(errs) > 0 {
		return SummaryFilter{}, errs
	}
	return filter, nil
}

type SummaryFilter struct {
	// StartDate and EndDate are inclusive. A missing bound leaves that side open.
	StartDate           *time.Time
	EndDate             *time.Time
	LeaveType           string
	IncludeFutureEvents bool
}

// LeaveTypeFilter returns nil when the filter is empty or "all".
func (f SummaryFilter) LeaveTypeFilter() *string {
	if f.LeaveType == "" || f.LeaveType == AllLeaveTypes {
		return nil
	}
	lt := f.LeaveType
	return &lt
}

type MonthlyStats struct {
	TotalEvents       int    `json:"totalEvents"`
	TotalEmployees    int    `json:"totalEmployees"`
	TotalBusinessDays int    `json:"totalBusinessDays"`
	MostCommonType    string `json:"mostCommonType"`
}

type EmployeeRanking struct {
	EmployeeID        int64          `json:"-"`
	Name              string         `json:"name"`
	TotalEvents       int            `json:"totalEvents"`
	TotalBusinessDays int            `json:"totalBusinessDays"`
	EventTypes        map[string]int `json:"eventTypes"`
}

type SummaryResponse struct {
	MonthlyStats    MonthlyStats      `json:"monthlyStats"`
	EmployeeRanking []EmployeeRanking `json:"employeeRanking"`
}
