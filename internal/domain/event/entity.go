package event

import (
	"strings"
	"time"
)

type LeaveType string

const (
	LeaveTypeVacation     LeaveType = "vacation"
	LeaveTypePersonal     LeaveType = "personal"
	LeaveTypeSick         LeaveType = "sick"
	LeaveTypeAbsent       LeaveType = "absent"
	LeaveTypeMaternity    LeaveType = "maternity"
	LeaveTypeBereavement  LeaveType = "bereavement"
	LeaveTypeStudy        LeaveType = "study"
	LeaveTypeMilitary     LeaveType = "military"
	LeaveTypeSabbatical   LeaveType = "sabbatical"
	LeaveTypeUnpaid       LeaveType = "unpaid"
	LeaveTypeCompensatory LeaveType = "compensatory"
	LeaveTypeOther        LeaveType = "other"
)

var leaveTypes = []LeaveType{
	LeaveTypeVacation, LeaveTypePersonal, LeaveTypeSick, LeaveTypeAbsent,
	LeaveTypeMaternity, LeaveTypeBereavement, LeaveTypeStudy, LeaveTypeMilitary,
	LeaveTypeSabbatical, LeaveTypeUnpaid, LeaveTypeCompensatory, LeaveTypeOther,
}

// LeaveTypes returns every accepted leave type.
func LeaveTypes() []LeaveType {
	out := make([]LeaveType, len(leaveTypes))
	copy(out, leaveTypes)
	return out
}

func (t LeaveType) IsValid() bool {
	for _, lt := range leaveTypes {
		if lt == t {
			return true
		}
	}
	return false
}

// LeaveEvent is one employee absence. EmployeeName is copied from the employee
// when the event is written and is never rewritten by a later rename.
type LeaveEvent struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	LeaveType    LeaveType
	// Date is the legacy single-day column. It is set only when StartDate equals EndDate.
	Date        *time.Time
	StartDate   time.Time
	EndDate     time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveRange returns the inclusive span the event covers, falling back to
// the legacy Date for rows written before ranges existed.
func (e LeaveEvent) EffectiveRange() (time.Time, time.Time) {
	start, end := e.StartDate, e.EndDate
	if start.IsZero() && e.Date != nil {
		start = *e.Date
	}
	if end.IsZero() {
		if e.Date != nil {
			end = *e.Date
		} else {
			end = start
		}
	}
	return start, end
}

// LegacyDate derives the single-day column for a range.
func LegacyDate(start, end time.Time) *time.Time {
	if start.Equal(end) {
		d := start
		return &d
	}
	return nil
}

// Filter selects events. Nil fields do not constrain. All set fields combine with AND.
type Filter struct {
	// From and To bound the date range. An event matches when its legacy date
	// is inside the range or its [StartDate, EndDate] interval overlaps it.
	From *time.Time
	To   *time.Time
	// StartedOnOrBefore excludes events whose effective start is after the date.
	StartedOnOrBefore *time.Time
	EmployeeID        *int64
	EmployeeName      *string
	LeaveType         *string
	// Query is a case-insensitive substring of the employee name or description.
	Query *string
}

// Matches applies the filter to a single event in memory. It mirrors the SQL
// predicate built by the event repository.
func (f Filter) Matches(e LeaveEvent) bool {
	if f.From != nil || f.To != nil {
		if !f.matchesRange(e) {
			return false
		}
	}
	if f.StartedOnOrBefore != nil {
		start, _ := e.EffectiveRange()
		if start.After(*f.StartedOnOrBefore) {
			return false
		}
	}
	if f.EmployeeID != nil && e.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.EmployeeName != nil && e.EmployeeName != *f.EmployeeName {
		return false
	}
	if f.LeaveType != nil && string(e.LeaveType) != *f.LeaveType {
		return false
	}
	if f.Query != nil {
		q := strings.ToLower(*f.Query)
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		if !strings.Contains(strings.ToLower(e.EmployeeName), q) && !strings.Contains(strings.ToLower(desc), q) {
			return false
		}
	}
	return true
}

func (f Filter) matchesRange(e LeaveEvent) bool {
	afterFrom := func(t time.Time) bool { return f.From == nil || !t.Before(*f.From) }
	beforeTo := func(t time.Time) bool { return f.To == nil || !t.After(*f.To) }

	if e.Date != nil && afterFrom(*e.Date) && beforeTo(*e.Date) {
		return true
	}
	if e.StartDate.IsZero() || e.EndDate.IsZero() {
		return false
	}
	return beforeTo(e.StartDate) && afterFrom(e.EndDate)
}
