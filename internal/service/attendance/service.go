package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise-hr/attendance-backend-go/internal/service/reconcile"
	shiftplanService "github.com/shiftwise-hr/attendance-backend-go/internal/service/shiftplan"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shiftplan.ShiftPlanRepository
	reconciler reconcile.ReconcilerService
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftPlanRepo shiftplan.ShiftPlanRepository,
	reconciler reconcile.ReconcilerService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftPlanRepository:  shiftPlanRepo,
		reconciler:           reconciler,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDateKey(ctx, req.EmployeeID, req.DateKey)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing record: %w", err)
	}
	if existing != nil && existing.ClockIn != "" {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	if existing != nil {
		existing.ClockIn = req.Time
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return s.mapResponse(ctx, *existing), nil
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		DateKey:    req.DateKey,
		ClockIn:    req.Time,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.mapResponse(ctx, created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.getRecord(ctx, req.EmployeeID, req.DateKey)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if rec.ClockIn == "" {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if rec.ClockOut != "" {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	rec.ClockOut = req.Time
	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapResponse(ctx, rec), nil
}

// StartBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.getRecord(ctx, req.EmployeeID, req.DateKey)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if rec.ClockIn == "" {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if rec.HasOpenBreak() {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyOpen
	}

	rec.Breaks = append(rec.Breaks, attendance.BreakPeriod{Start: req.Time})
	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapResponse(ctx, rec), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.getRecord(ctx, req.EmployeeID, req.DateKey)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !rec.HasOpenBreak() {
		return attendance.AttendanceResponse{}, attendance.ErrNoOpenBreak
	}

	rec.Breaks[len(rec.Breaks)-1].End = req.Time
	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapResponse(ctx, rec), nil
}

// GetTimesheet implements attendance.AttendanceService. Fetching a
// timesheet first runs the auto-apply reconciler over the month, so a
// safely covered day shows up as a pending proposal on the next read.
func (s *AttendanceServiceImpl) GetTimesheet(ctx context.Context, filter attendance.TimesheetFilter) (attendance.TimesheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.TimesheetResponse{}, err
	}

	if _, err := s.reconciler.ReconcileMonth(ctx, filter.EmployeeID, filter.Year, filter.Month, time.Now()); err != nil {
		return attendance.TimesheetResponse{}, fmt.Errorf("failed to reconcile month: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, filter.EmployeeID, filter.Year, filter.Month)
	if err != nil {
		return attendance.TimesheetResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		return attendance.TimesheetResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	cal, err := s.ShiftPlanRepository.GetCalendar(ctx, filter.Year, filter.Month)
	if err != nil {
		return attendance.TimesheetResponse{}, fmt.Errorf("failed to load shift calendar: %w", err)
	}

	days := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		var shift *shiftplan.Assignment
		if a, ok := shiftplanService.FindAssignment(cal, emp, attendance.BaseDate(rec.DateKey)); ok {
			shift = &a
		}
		days = append(days, mapWithShift(rec, shift))
	}

	return attendance.TimesheetResponse{
		EmployeeID: filter.EmployeeID,
		Year:       filter.Year,
		Month:      filter.Month,
		Days:       days,
	}, nil
}

// SubmitApplication implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitApplication(ctx context.Context, req attendance.SubmitApplicationRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.getRecord(ctx, req.EmployeeID, req.DateKey)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := rec.SubmitApplication(req.AppliedIn, req.AppliedOut, req.Reason, req.ReasonDetail); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapResponse(ctx, rec), nil
}

// WithdrawApplication implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) WithdrawApplication(ctx context.Context, req attendance.WithdrawApplicationRequest) (attendance.AttendanceResponse, error) {
	rec, err := s.getRecord(ctx, req.EmployeeID, req.DateKey)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := rec.WithdrawApplication(time.Now()); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapResponse(ctx, rec), nil
}

// ApproveApplication implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApproveApplication(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.transitionByID(ctx, id, func(rec *attendance.Attendance) error {
		return rec.ApproveApplication()
	})
}

// RequestResubmission implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RequestResubmission(ctx context.Context, req attendance.ResubmissionRequest) (attendance.AttendanceResponse, error) {
	return s.transitionByID(ctx, req.ID, func(rec *attendance.Attendance) error {
		return rec.RequestResubmission(req.AdminComment)
	})
}

// MarkAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.transitionByID(ctx, id, func(rec *attendance.Attendance) error {
		rec.MarkAbsent()
		return nil
	})
}

// CancelAbsence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CancelAbsence(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.transitionByID(ctx, id, func(rec *attendance.Attendance) error {
		return rec.CancelAbsence()
	})
}

// AnnotateCancellation implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AnnotateCancellation(ctx context.Context, req attendance.CancellationNotice) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.transitionByID(ctx, req.ID, func(rec *attendance.Attendance) error {
		if req.Kind == "late" {
			return rec.AnnotateLateCancellation(req.Reason)
		}
		return rec.AnnotateEarlyCancellation(req.Reason)
	})
}

// transitionByID loads the full record, applies one state-machine
// transition and writes the whole record back, so concurrent edits can
// only clobber at whole-application granularity.
func (s *AttendanceServiceImpl) transitionByID(ctx context.Context, id string, fn func(*attendance.Attendance) error) (attendance.AttendanceResponse, error) {
	rec, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if err := fn(&rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapResponse(ctx, rec), nil
}

func (s *AttendanceServiceImpl) getRecord(ctx context.Context, employeeID, dateKey string) (attendance.Attendance, error) {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDateKey(ctx, employeeID, dateKey)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *rec, nil
}

// mapResponse resolves the record's matched shift for the derived
// minutes. Lookup failures fall back to an unmatched day rather than
// failing the whole call.
func (s *AttendanceServiceImpl) mapResponse(ctx context.Context, rec attendance.Attendance) attendance.AttendanceResponse {
	var shift *shiftplan.Assignment

	emp, err := s.EmployeeRepository.GetByID(ctx, rec.EmployeeID)
	if err == nil {
		for _, name := range shiftplanService.CandidateNames(emp) {
			a, err := s.ShiftPlanRepository.GetByNameAndDate(ctx, name, attendance.BaseDate(rec.DateKey))
			if err == nil {
				shift = &a
				break
			}
		}
	}

	return mapWithShift(rec, shift)
}

func mapWithShift(rec attendance.Attendance, shift *shiftplan.Assignment) attendance.AttendanceResponse {
	totals := ComputeSegments(&rec, shift)

	resp := attendance.AttendanceResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		DateKey:         rec.DateKey,
		ClockIn:         rec.ClockIn,
		ClockOut:        rec.ClockOut,
		Breaks:          rec.Breaks,
		Segments:        rec.Segments,
		Note:            rec.Note,
		Application:     rec.Application,
		RawMinutes:      totals.RawMinutes,
		RoundedMinutes:  totals.RoundedMinutes,
		DispatchMinutes: totals.DispatchMinutes,
		PartTimeMinutes: totals.PartTimeMinutes,
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}
