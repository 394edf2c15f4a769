package shiftplan

import (
	"context"
)

// StoredAssignment pairs a calendar key with its assignment for
// persistence.
type StoredAssignment struct {
	Key        Key
	Assignment Assignment
}

// ShiftPlanRepository defines data access for imported shift
// assignments.
type ShiftPlanRepository interface {
	// UpsertAssignments writes assignments with last-writer-wins
	// semantics per (name, date)
	UpsertAssignments(ctx context.Context, assignments []StoredAssignment) error

	// GetCalendar loads the full calendar for one month
	GetCalendar(ctx context.Context, year, month int) (Calendar, error)

	// GetByNameAndDate finds the assignment for one person and date
	GetByNameAndDate(ctx context.Context, name, date string) (Assignment, error)
}
