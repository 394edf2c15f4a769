package attendance

import (
	"strings"
	"time"
)

// Status is the approval state of a day's application. A record whose
// Application is nil has never had an application submitted, which is
// distinct from a withdrawn one.
type Status string

const (
	StatusAbsent                Status = "absent"
	StatusPending               Status = "pending"
	StatusApproved              Status = "approved"
	StatusResubmissionRequested Status = "resubmission_requested"
)

const (
	// ReasonNoDeviation is the placeholder reason stamped by the
	// auto-apply reconciler when punches safely bracket the shift.
	ReasonNoDeviation = "-"

	// ReasonOther is the catch-all reason; it requires a free-text
	// elaboration on submit.
	ReasonOther = "other"

	// ReasonAbsent is the fixed reason stored when a day is marked absent.
	ReasonAbsent = "absent"
)

// Application is the approval workflow state for one work day.
// AppliedIn/AppliedOut are the hours being claimed for payroll,
// independent of the raw punches.
type Application struct {
	Status       Status     `json:"status"`
	AppliedIn    string     `json:"applied_in"`
	AppliedOut   string     `json:"applied_out"`
	Reason       string     `json:"reason"`
	ReasonDetail string     `json:"reason_detail,omitempty"`
	AdminComment string     `json:"admin_comment,omitempty"`
	AutoApplied  bool       `json:"auto_applied,omitempty"`
	Withdrawn    bool       `json:"withdrawn,omitempty"`
	WithdrawnAt  *time.Time `json:"withdrawn_at,omitempty"`

	// Late/early cancellation are annotations, not status transitions.
	// Downstream reports treat an annotated day as "no discrepancy".
	LateCancelled     bool   `json:"late_cancelled,omitempty"`
	LateCancelReason  string `json:"late_cancel_reason,omitempty"`
	EarlyCancelled    bool   `json:"early_cancelled,omitempty"`
	EarlyCancelReason string `json:"early_cancel_reason,omitempty"`
}

// ActivePending reports whether the record carries a live pending
// application. A withdrawn application keeps its pending status data-wise
// but must be treated as if none were pending.
func (a *Attendance) ActivePending() bool {
	return a.Application != nil && a.Application.Status == StatusPending && !a.Application.Withdrawn
}

// SubmitApplication submits or resubmits the day's application. It is
// valid from no-application, pending (editing a live submission) and
// resubmission_requested. Validation happens before any mutation.
func (a *Attendance) SubmitApplication(appliedIn, appliedOut, reason, reasonDetail string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if reason == ReasonOther && strings.TrimSpace(reasonDetail) == "" {
		return ErrReasonDetailRequired
	}
	if a.Application != nil {
		switch a.Application.Status {
		// The empty status covers annotation-only applications, which
		// carry cancellation notes but no submission yet.
		case StatusPending, StatusResubmissionRequested, "":
		default:
			return ErrInvalidTransition
		}
	}

	prev := a.Application
	app := &Application{
		Status:       StatusPending,
		AppliedIn:    appliedIn,
		AppliedOut:   appliedOut,
		Reason:       reason,
		ReasonDetail: reasonDetail,
	}
	if prev != nil {
		app.AdminComment = prev.AdminComment
		app.LateCancelled = prev.LateCancelled
		app.LateCancelReason = prev.LateCancelReason
		app.EarlyCancelled = prev.EarlyCancelled
		app.EarlyCancelReason = prev.EarlyCancelReason
	}
	a.Application = app
	return nil
}

// ApproveApplication moves a live pending application to approved. All
// other application fields are preserved unchanged.
func (a *Attendance) ApproveApplication() error {
	if !a.ActivePending() {
		return ErrInvalidTransition
	}
	a.Application.Status = StatusApproved
	return nil
}

// RequestResubmission asks the employee to re-enter the day's
// application. Valid from pending or approved, and requires an
// administrator comment.
func (a *Attendance) RequestResubmission(adminComment string) error {
	if strings.TrimSpace(adminComment) == "" {
		return ErrAdminCommentRequired
	}
	if a.Application == nil || a.Application.Withdrawn {
		return ErrInvalidTransition
	}
	switch a.Application.Status {
	case StatusPending, StatusApproved:
	default:
		return ErrInvalidTransition
	}
	a.Application.Status = StatusResubmissionRequested
	a.Application.AdminComment = adminComment
	return nil
}

// WithdrawApplication flags a live pending application as withdrawn. The
// status is left untouched; the flag excludes the record from counts and
// permanently blocks re-auto-application.
func (a *Attendance) WithdrawApplication(at time.Time) error {
	if !a.ActivePending() {
		return ErrInvalidTransition
	}
	a.Application.Withdrawn = true
	a.Application.WithdrawnAt = &at
	return nil
}

// MarkAbsent records the day as an absence. It can be applied at any
// time: the punches and breaks are cleared and the status set to absent
// with a fixed reason.
func (a *Attendance) MarkAbsent() {
	a.ClockIn = ""
	a.ClockOut = ""
	a.Breaks = nil
	a.Application = &Application{
		Status: StatusAbsent,
		Reason: ReasonAbsent,
	}
}

// CancelAbsence reverses MarkAbsent, resetting the record to its
// pre-application state.
func (a *Attendance) CancelAbsence() error {
	if a.Application == nil || a.Application.Status != StatusAbsent {
		return ErrInvalidTransition
	}
	a.Application = nil
	return nil
}

// AnnotateLateCancellation marks the day as a late shift cancellation.
// This is an annotation independent of the application status.
func (a *Attendance) AnnotateLateCancellation(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if a.Application == nil {
		a.Application = &Application{}
	}
	a.Application.LateCancelled = true
	a.Application.LateCancelReason = reason
	return nil
}

// AnnotateEarlyCancellation marks the day as an early shift cancellation.
func (a *Attendance) AnnotateEarlyCancellation(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if a.Application == nil {
		a.Application = &Application{}
	}
	a.Application.EarlyCancelled = true
	a.Application.EarlyCancelReason = reason
	return nil
}
