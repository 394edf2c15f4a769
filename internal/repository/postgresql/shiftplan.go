package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
)

type shiftPlanRepository struct {
	db *database.DB
}

func NewShiftPlanRepository(db *database.DB) shiftplan.ShiftPlanRepository {
	return &shiftPlanRepository{db: db}
}

// UpsertAssignments implements shiftplan.ShiftPlanRepository. Writes run
// in one transaction; a later sheet for the same (person, date) replaces
// the earlier row wholesale.
func (r *shiftPlanRepository) UpsertAssignments(ctx context.Context, assignments []shiftplan.StoredAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	query := `
		INSERT INTO shift_assignments (
			person_name, date, start_time, end_time, is_off, is_dispatch,
			dispatch_start, dispatch_end, part_time_start, part_time_end,
			location, source_label, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		)
		ON CONFLICT (person_name, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_off = EXCLUDED.is_off,
			is_dispatch = EXCLUDED.is_dispatch,
			dispatch_start = EXCLUDED.dispatch_start,
			dispatch_end = EXCLUDED.dispatch_end,
			part_time_start = EXCLUDED.part_time_start,
			part_time_end = EXCLUDED.part_time_end,
			location = EXCLUDED.location,
			source_label = EXCLUDED.source_label,
			updated_at = NOW()
	`

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, stored := range assignments {
			a := stored.Assignment
			dispatchStart, dispatchEnd := rangeColumns(a.DispatchRange)
			partTimeStart, partTimeEnd := rangeColumns(a.PartTimeRange)

			_, err := tx.Exec(ctx, query,
				stored.Key.Name,
				stored.Key.Date,
				a.Start,
				a.End,
				a.IsOff,
				a.IsDispatch,
				dispatchStart,
				dispatchEnd,
				partTimeStart,
				partTimeEnd,
				a.Location,
				a.SourceLabel,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert shift assignment: %w", err)
			}
		}
		return nil
	})
}

// GetCalendar implements shiftplan.ShiftPlanRepository.
func (r *shiftPlanRepository) GetCalendar(ctx context.Context, year, month int) (shiftplan.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	query := `
		SELECT person_name, date, start_time, end_time, is_off, is_dispatch,
			   dispatch_start, dispatch_end, part_time_start, part_time_end,
			   location, source_label
		FROM shift_assignments
		WHERE date LIKE $1 || '%'
	`

	rows, err := q.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift calendar: %w", err)
	}
	defer rows.Close()

	cal := make(shiftplan.Calendar)
	for rows.Next() {
		name, date, a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		cal.Set(name, date, a)
	}

	return cal, rows.Err()
}

// GetByNameAndDate implements shiftplan.ShiftPlanRepository.
func (r *shiftPlanRepository) GetByNameAndDate(ctx context.Context, name, date string) (shiftplan.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT person_name, date, start_time, end_time, is_off, is_dispatch,
			   dispatch_start, dispatch_end, part_time_start, part_time_end,
			   location, source_label
		FROM shift_assignments
		WHERE person_name = $1 AND date = $2
	`

	_, _, a, err := scanAssignment(q.QueryRow(ctx, query, name, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shiftplan.Assignment{}, shiftplan.ErrAssignmentNotFound
		}
		return shiftplan.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return a, nil
}

func scanAssignment(row pgx.Row) (name, date string, a shiftplan.Assignment, err error) {
	var dispatchStart, dispatchEnd, partTimeStart, partTimeEnd *string

	err = row.Scan(
		&name, &date, &a.Start, &a.End, &a.IsOff, &a.IsDispatch,
		&dispatchStart, &dispatchEnd, &partTimeStart, &partTimeEnd,
		&a.Location, &a.SourceLabel,
	)
	if err != nil {
		return "", "", shiftplan.Assignment{}, err
	}

	if dispatchStart != nil && dispatchEnd != nil {
		a.DispatchRange = &shiftplan.TimeRange{Start: *dispatchStart, End: *dispatchEnd}
	}
	if partTimeStart != nil && partTimeEnd != nil {
		a.PartTimeRange = &shiftplan.TimeRange{Start: *partTimeStart, End: *partTimeEnd}
	}

	return name, date, a, nil
}

func rangeColumns(r *shiftplan.TimeRange) (*string, *string) {
	if r == nil {
		return nil, nil
	}
	return &r.Start, &r.End
}
