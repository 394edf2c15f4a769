package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
)

// ReconcilerService runs the auto-apply pass for an employee's month and
// persists the proposals.
type ReconcilerService interface {
	ReconcileMonth(ctx context.Context, employeeID string, year, month int, now time.Time) (int, error)
}

type ReconcilerServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shiftplan.ShiftPlanRepository
}

func NewReconcilerService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftPlanRepo shiftplan.ShiftPlanRepository,
) ReconcilerService {
	return &ReconcilerServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftPlanRepository:  shiftPlanRepo,
	}
}

// ReconcileMonth implements ReconcilerService. Persisting a proposal is
// fire-and-forget: a failed write is logged and skipped, never rolled
// back locally. The next run simply re-proposes, which is safe because
// the pass is idempotent.
func (s *ReconcilerServiceImpl) ReconcileMonth(ctx context.Context, employeeID string, year, month int, now time.Time) (int, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	cal, err := s.ShiftPlanRepository.GetCalendar(ctx, year, month)
	if err != nil {
		return 0, fmt.Errorf("failed to load shift calendar: %w", err)
	}

	batch := make([]*attendance.Attendance, len(records))
	for i := range records {
		batch[i] = &records[i]
	}

	proposed := Apply(batch, cal, emp, now)

	persisted := 0
	for _, rec := range proposed {
		if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
			slog.Error("Failed to persist auto-apply proposal",
				"employee_id", rec.EmployeeID,
				"date_key", rec.DateKey,
				"error", err)
			continue
		}
		persisted++
	}

	if len(proposed) > 0 {
		slog.Info("Auto-apply reconciliation finished",
			"employee_id", employeeID,
			"year", year,
			"month", month,
			"proposed", len(proposed),
			"persisted", persisted)
	}

	return len(proposed), nil
}
