package shiftplan

import (
	"context"
)

// ShiftPlanService defines business logic for the shift schedule.
type ShiftPlanService interface {
	// ImportSheet parses one sheet export into the calendar and
	// persists the assignments
	ImportSheet(ctx context.Context, req ImportSheetRequest) (ImportSummaryResponse, error)

	// GetCalendar loads the stored calendar for a month
	GetCalendar(ctx context.Context, year, month int) (Calendar, error)
}
