package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this work day")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in yet")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out")
	case errors.Is(err, attendance.ErrBreakAlreadyOpen):
		Conflict(w, "A break is already open")
	case errors.Is(err, attendance.ErrNoOpenBreak):
		Conflict(w, "No open break to end")
	case errors.Is(err, attendance.ErrInvalidTransition):
		Conflict(w, "Application is not in a state that allows this action")
	case errors.Is(err, attendance.ErrReasonRequired):
		BadRequest(w, "An application reason is required", nil)
	case errors.Is(err, attendance.ErrReasonDetailRequired):
		BadRequest(w, "Reason detail is required when the reason is other", nil)
	case errors.Is(err, attendance.ErrAdminCommentRequired):
		BadRequest(w, "An administrator comment is required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift plan domain errors
	case errors.Is(err, shiftplan.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shiftplan.ErrNoDateHeader):
		BadRequest(w, "Sheet has no recognizable date header row", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
