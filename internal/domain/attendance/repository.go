package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records. The
// application/segments bundle is serialized into the comment column by
// the implementation; callers only ever see the typed fields.
type AttendanceRepository interface {
	// Create stores a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDateKey retrieves the record for one work day.
	// Returns nil when no record exists yet.
	GetByEmployeeAndDateKey(ctx context.Context, employeeID, dateKey string) (*Attendance, error)

	// Update writes back a full record, including the re-encoded
	// comment blob, so unrelated fields are never clobbered piecemeal
	Update(ctx context.Context, attendance Attendance) error

	// ListByEmployeeMonth retrieves all records for one employee whose
	// date key falls in the given month, ordered by date key
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Attendance, error)
}
