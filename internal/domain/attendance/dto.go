package attendance

import (
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type PunchRequest struct {
	EmployeeID string `json:"employee_id"`
	DateKey    string `json:"date_key"`
	Time       string `json:"time"` // HH:MM
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidDateKey(r.DateKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_key",
			Message: "date_key must be YYYY-MM-DD with an optional _n shift suffix",
		})
	}

	if !validator.IsValidClock(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitApplicationRequest struct {
	EmployeeID   string `json:"employee_id"`
	DateKey      string `json:"date_key"`
	AppliedIn    string `json:"applied_in"`
	AppliedOut   string `json:"applied_out"`
	Reason       string `json:"reason"`
	ReasonDetail string `json:"reason_detail"`
}

func (r *SubmitApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidDateKey(r.DateKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_key",
			Message: "date_key must be YYYY-MM-DD with an optional _n shift suffix",
		})
	}

	if !validator.IsValidClock(r.AppliedIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "applied_in",
			Message: "applied_in must be HH:MM",
		})
	}

	if !validator.IsValidClock(r.AppliedOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "applied_out",
			Message: "applied_out must be HH:MM",
		})
	}

	// The reason itself is validated by the state machine so that the
	// "other"-needs-detail rule lives in exactly one place.

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WithdrawApplicationRequest struct {
	EmployeeID string `json:"employee_id"`
	DateKey    string `json:"date_key"`
}

type ResubmissionRequest struct {
	ID           string `json:"-"`
	AdminComment string `json:"admin_comment"`
}

type CancellationNotice struct {
	ID     string `json:"-"`
	Kind   string `json:"kind"` // late | early
	Reason string `json:"reason"`
}

func (r *CancellationNotice) Validate() error {
	var errs validator.ValidationErrors

	if r.Kind != "late" && r.Kind != "early" {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be late or early",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetFilter struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name,omitempty"`
	DateKey      string        `json:"date_key"`
	ClockIn      string        `json:"clock_in,omitempty"`
	ClockOut     string        `json:"clock_out,omitempty"`
	Breaks       []BreakPeriod `json:"breaks,omitempty"`
	Segments     []WorkSegment `json:"segments,omitempty"`
	Note         string        `json:"note,omitempty"`
	Application  *Application  `json:"application,omitempty"`

	// Derived by the segment calculator against the matched shift.
	RawMinutes      int `json:"raw_minutes"`
	RoundedMinutes  int `json:"rounded_minutes"`
	DispatchMinutes int `json:"dispatch_minutes"`
	PartTimeMinutes int `json:"part_time_minutes"`
}

type TimesheetResponse struct {
	EmployeeID string               `json:"employee_id"`
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	Days       []AttendanceResponse `json:"days"`
}
