package reconcile

import (
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/timeutil"
	shiftplanService "github.com/shiftwise-hr/attendance-backend-go/internal/service/shiftplan"
)

// Apply proposes pending applications for every record whose punches
// safely bracket the scheduled shift: arrived strictly before the shift
// started and left at or after it ended. Partial coverage or any
// deviation is left untouched; proposing a deviating reason is a human
// decision. Records are mutated in place and the mutated ones returned.
//
// The pass is idempotent: a record that already carries any application
// status is never touched, so a second run over the same batch is a
// no-op.
func Apply(records []*attendance.Attendance, cal shiftplan.Calendar, emp employee.Employee, today time.Time) []*attendance.Attendance {
	var proposed []*attendance.Attendance

	todayDate := today.Format("2006-01-02")

	for _, rec := range records {
		// An existing decision, whatever it is, is never overwritten.
		if rec.Application != nil && rec.Application.Status != "" {
			continue
		}
		// A withdrawn application blocks re-auto-application for good.
		if rec.Application != nil && rec.Application.Withdrawn {
			continue
		}
		if !rec.IsComplete() {
			continue
		}
		date := attendance.BaseDate(rec.DateKey)
		if date > todayDate {
			continue
		}

		shift, ok := shiftplanService.FindAssignment(cal, emp, date)
		if !ok || shift.IsOff || shift.Start == "" || shift.End == "" {
			continue
		}

		clockIn := timeutil.ToMinutes(rec.ClockIn)
		clockOut := timeutil.ToMinutes(rec.ClockOut)
		shiftStart := timeutil.ToMinutes(shift.Start)
		shiftEnd := timeutil.ToMinutes(shift.End)

		if clockIn < shiftStart && clockOut >= shiftEnd {
			app := rec.Application
			if app == nil {
				app = &attendance.Application{}
			}
			app.Status = attendance.StatusPending
			app.AppliedIn = shift.Start
			app.AppliedOut = shift.End
			app.Reason = attendance.ReasonNoDeviation
			app.AutoApplied = true
			rec.Application = app

			proposed = append(proposed, rec)
		}
	}

	return proposed
}
