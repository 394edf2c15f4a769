package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance records and
// their approval applications. Identity is always an explicit parameter;
// nothing below the handler layer reads ambient session state.
type AttendanceService interface {
	// ClockIn opens a new work day record
	ClockIn(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// ClockOut closes the work day
	ClockOut(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// StartBreak appends an open break entry
	StartBreak(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// EndBreak completes the open break entry
	EndBreak(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// GetTimesheet returns one month of records with derived segment
	// minutes, running the auto-apply reconciler over the batch first
	GetTimesheet(ctx context.Context, filter TimesheetFilter) (TimesheetResponse, error)

	// SubmitApplication submits or resubmits a day's application
	SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (AttendanceResponse, error)

	// WithdrawApplication withdraws a pending application
	WithdrawApplication(ctx context.Context, req WithdrawApplicationRequest) (AttendanceResponse, error)

	// ApproveApplication approves a pending application (administrator)
	ApproveApplication(ctx context.Context, id string) (AttendanceResponse, error)

	// RequestResubmission sends a pending or approved application back
	// to the employee with a comment (administrator)
	RequestResubmission(ctx context.Context, req ResubmissionRequest) (AttendanceResponse, error)

	// MarkAbsent records the day as an absence (administrator)
	MarkAbsent(ctx context.Context, id string) (AttendanceResponse, error)

	// CancelAbsence reverses MarkAbsent (administrator)
	CancelAbsence(ctx context.Context, id string) (AttendanceResponse, error)

	// AnnotateCancellation attaches a late/early cancellation note
	AnnotateCancellation(ctx context.Context, req CancellationNotice) (AttendanceResponse, error)
}
