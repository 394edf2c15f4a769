package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/service/reconcile"
)

type ReconcileJobs struct {
	employeeRepo employee.EmployeeRepository
	reconciler   reconcile.ReconcilerService
}

func NewReconcileJobs(
	employeeRepo employee.EmployeeRepository,
	reconciler reconcile.ReconcilerService,
) *ReconcileJobs {
	return &ReconcileJobs{
		employeeRepo: employeeRepo,
		reconciler:   reconciler,
	}
}

func (j *ReconcileJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_apply_current_month", 1*time.Hour, j.AutoApplyCurrentMonth)
}

// AutoApplyCurrentMonth sweeps every active employee's current month
// through the reconciler. The reconciler itself skips any day whose
// application already has a status, so repeated sweeps are harmless.
func (j *ReconcileJobs) AutoApplyCurrentMonth(ctx context.Context) error {
	slog.Info("Cron: Starting auto-apply sweep")

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	now := time.Now()
	applied := 0
	for _, emp := range employees {
		count, err := j.reconciler.ReconcileMonth(ctx, emp.ID, now.Year(), int(now.Month()), now)
		if err != nil {
			slog.Error("Cron: Auto-apply failed for employee",
				"employee_id", emp.ID,
				"error", err)
			continue
		}
		applied += count
	}

	slog.Info("Cron: Auto-apply sweep finished", "employees", len(employees), "applied", applied)
	return nil
}
