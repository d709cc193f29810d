package holiday

import "time"

// CompanyHoliday is an organization-declared non-working date.
type CompanyHoliday struct {
	ID          int64
	Name        string
	Date        time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Set is a lookup of non-working dates keyed by YYYY-MM-DD.
type Set map[string]struct{}

func NewSet(dates ...time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s Set) Add(d time.Time) {
	s[d.Format("2006-01-02")] = struct{}{}
}

func (s Set) Contains(d time.Time) bool {
	_, ok := s[d.Format("2006-01-02")]
	return ok
}
