package employee

import (
	"time"
)

// EmploymentType distinguishes how an employee's hours are paid.
type EmploymentType string

const (
	TypeDispatch EmploymentType = "dispatch"
	TypeFullTime EmploymentType = "fulltime"
	TypePartTime EmploymentType = "parttime"
)

// Employee is the read-only profile consumed by payroll and by the
// shift-sheet name matcher.
type Employee struct {
	ID       string
	FullName string

	// NameVariants are the spellings this employee may appear under in
	// shift sheets (with/without spaces, reversed order).
	NameVariants []string

	EmploymentType EmploymentType
	TenureStart    time.Time
	LivesAlone     bool
	Active         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDispatch reports whether the employee is dispatch-typed.
func (e *Employee) IsDispatch() bool {
	return e.EmploymentType == TypeDispatch
}

// TenureYears returns full years of service at the given time.
func (e *Employee) TenureYears(at time.Time) int {
	if e.TenureStart.IsZero() || at.Before(e.TenureStart) {
		return 0
	}
	years := at.Year() - e.TenureStart.Year()
	anniversary := e.TenureStart.AddDate(years, 0, 0)
	if at.Before(anniversary) {
		years--
	}
	return years
}
