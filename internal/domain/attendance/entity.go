package attendance

import (
	"strings"
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/timeutil"
)

// BreakPeriod is one break taken during a work day. Insertion order is
// chronological. End is empty while the break is still open.
type BreakPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkSegment is a work-location annotation attached by the employee.
// It describes where the hours were spent and is not used for
// time accounting.
type WorkSegment struct {
	Location   string  `json:"location"`
	Department string  `json:"department"`
	Hours      float64 `json:"hours"`
}

// Attendance is one work day for one employee. ClockIn/ClockOut are
// "HH:MM" strings; an empty ClockOut means the employee is still working
// or the day is incomplete.
type Attendance struct {
	ID         string
	EmployeeID string

	// DateKey is the ISO work date, optionally suffixed "_2", "_3", ...
	// for a second or third shift on the same calendar day. Each suffix
	// is a distinct record, not a sub-record.
	DateKey string

	ClockIn  string
	ClockOut string
	Breaks   []BreakPeriod
	Segments []WorkSegment
	Note     string

	Application *Application

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// BaseDate strips any shift-number suffix from a date key and returns the
// ISO calendar date.
func BaseDate(dateKey string) string {
	if i := strings.Index(dateKey, "_"); i >= 0 {
		return dateKey[:i]
	}
	return dateKey
}

// Date parses the record's calendar date.
func (a *Attendance) Date() (time.Time, error) {
	return time.Parse("2006-01-02", BaseDate(a.DateKey))
}

// IsComplete reports whether both punches are present.
func (a *Attendance) IsComplete() bool {
	return a.ClockIn != "" && a.ClockOut != ""
}

// HasOpenBreak reports whether the last break has no end yet.
func (a *Attendance) HasOpenBreak() bool {
	n := len(a.Breaks)
	return n > 0 && a.Breaks[n-1].End == ""
}

// BreakMinutes sums the completed breaks, rolling an end time that is
// numerically before its start over to the next day.
func (a *Attendance) BreakMinutes() int {
	total := 0
	for _, b := range a.Breaks {
		if b.Start == "" || b.End == "" {
			continue
		}
		total += timeutil.SpanMinutes(timeutil.ToMinutes(b.Start), timeutil.ToMinutes(b.End))
	}
	return total
}

// AppliedInterval returns the interval the employee formally claims for
// payroll: the applied times when an application carries them, the raw
// punches otherwise.
func (a *Attendance) AppliedInterval() (in, out string) {
	if a.Application != nil && a.Application.AppliedIn != "" && a.Application.AppliedOut != "" {
		return a.Application.AppliedIn, a.Application.AppliedOut
	}
	return a.ClockIn, a.ClockOut
}
