package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	comment, err := attendance.EncodeComment(&rec)
	if err != nil {
		return attendance.Attendance{}, err
	}
	breaks, err := marshalBreaks(rec.Breaks)
	if err != nil {
		return attendance.Attendance{}, err
	}

	rec.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (
			id, employee_id, date_key, clock_in, clock_out, breaks, comment,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.DateKey,
		rec.ClockIn,
		rec.ClockOut,
		breaks,
		comment,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date_key, a.clock_in, a.clock_out,
			   a.breaks, a.comment, a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDateKey implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDateKey(ctx context.Context, employeeID, dateKey string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date_key, a.clock_in, a.clock_out,
			   a.breaks, a.comment, a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date_key = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, dateKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this work day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date key: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository. The whole record is
// written back, comment blob included, so concurrent writers clobber at
// record granularity and never mix fields.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	comment, err := attendance.EncodeComment(&rec)
	if err != nil {
		return err
	}
	breaks, err := marshalBreaks(rec.Breaks)
	if err != nil {
		return err
	}

	query := `
		UPDATE attendances
		SET clock_in = $1, clock_out = $2, breaks = $3, comment = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, rec.ClockIn, rec.ClockOut, breaks, comment, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	query := `
		SELECT a.id, a.employee_id, a.date_key, a.clock_in, a.clock_out,
			   a.breaks, a.comment, a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date_key LIKE $2 || '%'
		ORDER BY a.date_key
	`

	rows, err := q.Query(ctx, query, employeeID, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var rec attendance.Attendance
	var breaksRaw, comment []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.DateKey, &rec.ClockIn, &rec.ClockOut,
		&breaksRaw, &comment, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if rec.Breaks, err = unmarshalBreaks(breaksRaw); err != nil {
		return attendance.Attendance{}, err
	}
	if err := attendance.DecodeComment(&rec, string(comment)); err != nil {
		return attendance.Attendance{}, err
	}

	return rec, nil
}

func marshalBreaks(breaks []attendance.BreakPeriod) ([]byte, error) {
	if len(breaks) == 0 {
		return []byte("[]"), nil
	}
	raw, err := json.Marshal(breaks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode breaks: %w", err)
	}
	return raw, nil
}

func unmarshalBreaks(raw []byte) ([]attendance.BreakPeriod, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var breaks []attendance.BreakPeriod
	if err := json.Unmarshal(raw, &breaks); err != nil {
		return nil, fmt.Errorf("failed to decode breaks: %w", err)
	}
	if len(breaks) == 0 {
		return nil, nil
	}
	return breaks, nil
}
