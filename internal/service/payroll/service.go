package payroll

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/payroll"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/timeutil"
	attendanceService "github.com/shiftwise-hr/attendance-backend-go/internal/service/attendance"
	shiftplanService "github.com/shiftwise-hr/attendance-backend-go/internal/service/shiftplan"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shiftplan.ShiftPlanRepository
}

func NewPayrollService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftPlanRepo shiftplan.ShiftPlanRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftPlanRepository:  shiftPlanRepo,
	}
}

// MonthlySummary implements payroll.PayrollService. Only approved days
// count; their minutes are recomputed from the applied interval, never
// the raw punches, and displayed floored to 30-minute multiples.
func (s *PayrollServiceImpl) MonthlySummary(ctx context.Context, req payroll.SummaryRequest) (payroll.MonthlySummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlySummary{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	cal, err := s.ShiftPlanRepository.GetCalendar(ctx, req.Year, req.Month)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to load shift calendar: %w", err)
	}

	summary := Aggregate(emp, records, cal, req.Year, req.Month, req.Holidays)
	return summary, nil
}

// Aggregate is the pure monthly aggregation over one employee's
// records. Exposed for direct use by reports and tests.
func Aggregate(
	emp employee.Employee,
	records []attendance.Attendance,
	cal shiftplan.Calendar,
	year, month int,
	holidays []int,
) payroll.MonthlySummary {
	summary := payroll.MonthlySummary{
		EmployeeID: emp.ID,
		Year:       year,
		Month:      month,
	}

	attendedDays := make(map[int]bool)
	var firstDay *firstOfMonthDay

	for i := range records {
		rec := records[i]
		if rec.Application == nil || rec.Application.Status != attendance.StatusApproved {
			continue
		}

		applied := appliedCopy(rec)
		var shift *shiftplan.Assignment
		if a, ok := shiftplanService.FindAssignment(cal, emp, attendance.BaseDate(rec.DateKey)); ok {
			shift = &a
		}

		totals := attendanceService.ComputeSegments(&applied, shift)
		worked := timeutil.FloorToHalfHour(totals.RawMinutes)

		summary.TotalMinutes += worked
		summary.DispatchMinutes += totals.DispatchMinutes
		summary.PartTimeMinutes += totals.PartTimeMinutes

		day := dayNumber(rec.DateKey)
		if day > 0 && !attendedDays[day] {
			attendedDays[day] = true
			summary.DaysWorked++
		}

		if day == 1 && firstDay == nil {
			clockOut := rec.ClockOut
			if clockOut == "" {
				clockOut = rec.Application.AppliedOut
			}
			firstDay = &firstOfMonthDay{
				WorkedMinutes: worked,
				ClockOut:      clockOut,
			}
		}
	}

	summary.DispatchHours = minutesToHours(summary.DispatchMinutes)
	summary.PartTimeHours = minutesToHours(summary.PartTimeMinutes)

	summary.Bonuses = evaluateBonuses(emp, monthOf(year, month), holidays, attendedDays, firstDay)
	summary.BonusTotal = decimal.Zero
	for _, award := range summary.Bonuses {
		summary.BonusTotal = summary.BonusTotal.Add(award.Amount)
	}

	return summary
}

// appliedCopy substitutes the applied interval for the raw punches so
// the segment calculator works off the claimed hours.
func appliedCopy(rec attendance.Attendance) attendance.Attendance {
	applied := rec
	if rec.Application != nil && rec.Application.AppliedIn != "" && rec.Application.AppliedOut != "" {
		applied.ClockIn = rec.Application.AppliedIn
		applied.ClockOut = rec.Application.AppliedOut
	}
	return applied
}

// dayNumber extracts the day-of-month from a date key, 0 on failure.
func dayNumber(dateKey string) int {
	date := attendance.BaseDate(dateKey)
	if len(date) != 10 {
		return 0
	}
	day, err := strconv.Atoi(date[8:])
	if err != nil {
		return 0
	}
	return day
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}
