package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyClockedIn = errors.New("you have already clocked in for this work day")
	ErrNotClockedIn     = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")
	ErrBreakAlreadyOpen  = errors.New("a break is already in progress")
	ErrNoOpenBreak       = errors.New("no break is in progress")

	// Application state machine errors. Transition validation is
	// all-or-nothing: a rejected transition leaves the record untouched.
	ErrReasonRequired       = errors.New("a reason is required")
	ErrReasonDetailRequired = errors.New("a free-text elaboration is required for the \"other\" reason")
	ErrAdminCommentRequired = errors.New("an administrator comment is required")
	ErrInvalidTransition    = errors.New("the application is not in a state that allows this action")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
