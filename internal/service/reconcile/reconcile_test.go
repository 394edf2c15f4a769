package reconcile

import (
	"testing"
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEmployee = employee.Employee{
	ID:       "emp-1",
	FullName: "山田 太郎",
}

func calendarWith(date string, a shiftplan.Assignment) shiftplan.Calendar {
	cal := make(shiftplan.Calendar)
	cal.Set(testEmployee.FullName, date, a)
	return cal
}

func rec(dateKey, clockIn, clockOut string) *attendance.Attendance {
	return &attendance.Attendance{
		ID:         "att-" + dateKey,
		EmployeeID: testEmployee.ID,
		DateKey:    dateKey,
		ClockIn:    clockIn,
		ClockOut:   clockOut,
	}
}

var today = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func TestApplyBracketsShift(t *testing.T) {
	// Arrived before 09:00, left after 18:00: the shift is safely
	// covered and a pending application is proposed for the shift hours.
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14", "08:45", "18:10")

	proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)

	require.Len(t, proposed, 1)
	app := r.Application
	require.NotNil(t, app)
	assert.Equal(t, attendance.StatusPending, app.Status)
	assert.Equal(t, "09:00", app.AppliedIn)
	assert.Equal(t, "18:00", app.AppliedOut)
	assert.Equal(t, attendance.ReasonNoDeviation, app.Reason)
	assert.True(t, app.AutoApplied)
}

func TestApplyExactShiftEndCounts(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14", "08:59", "18:00")

	proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
	assert.Len(t, proposed, 1)
}

func TestApplySkipsDeviations(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})

	cases := []struct {
		name     string
		clockIn  string
		clockOut string
	}{
		{"late arrival", "09:01", "18:30"},
		{"arrival exactly at start", "09:00", "18:30"},
		{"early departure", "08:30", "17:59"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := rec("2026-08-14", c.clockIn, c.clockOut)
			proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
			assert.Empty(t, proposed)
			assert.Nil(t, r.Application)
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14", "08:45", "18:10")

	first := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
	require.Len(t, first, 1)

	second := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
	assert.Empty(t, second)
	assert.Equal(t, attendance.StatusPending, r.Application.Status)
}

func TestApplyNeverOverwritesDecisions(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})

	for _, status := range []attendance.Status{
		attendance.StatusPending,
		attendance.StatusApproved,
		attendance.StatusResubmissionRequested,
		attendance.StatusAbsent,
	} {
		r := rec("2026-08-14", "08:45", "18:10")
		r.Application = &attendance.Application{Status: status, AppliedIn: "10:00", AppliedOut: "16:00"}

		proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)

		assert.Empty(t, proposed, "status %s", status)
		assert.Equal(t, status, r.Application.Status)
		assert.Equal(t, "10:00", r.Application.AppliedIn)
	}
}

func TestApplySkipsWithdrawn(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14", "08:45", "18:10")
	r.Application = &attendance.Application{Withdrawn: true}

	proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
	assert.Empty(t, proposed)
}

func TestApplySkipsIncompleteAndFuture(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	cal.Set(testEmployee.FullName, "2026-08-25", shiftplan.Assignment{Start: "09:00", End: "18:00"})

	open := rec("2026-08-14", "08:45", "")
	future := rec("2026-08-25", "08:45", "18:10")

	proposed := Apply([]*attendance.Attendance{open, future}, cal, testEmployee, today)

	assert.Empty(t, proposed)
	assert.Nil(t, open.Application)
	assert.Nil(t, future.Application)
}

func TestApplySkipsOffAndUnmatchedDays(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{IsOff: true})

	offDay := rec("2026-08-14", "08:45", "18:10")
	noShift := rec("2026-08-15", "08:45", "18:10")

	proposed := Apply([]*attendance.Attendance{offDay, noShift}, cal, testEmployee, today)
	assert.Empty(t, proposed)
}

func TestApplyPreservesAnnotations(t *testing.T) {
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14", "08:45", "18:10")
	r.Application = &attendance.Application{
		LateCancelled:    true,
		LateCancelReason: "shift moved",
	}

	proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)

	require.Len(t, proposed, 1)
	assert.Equal(t, attendance.StatusPending, r.Application.Status)
	assert.True(t, r.Application.LateCancelled)
	assert.Equal(t, "shift moved", r.Application.LateCancelReason)
}

func TestApplyMatchesNameVariant(t *testing.T) {
	// The sheet lists the name without the space; the matcher still
	// finds the assignment.
	cal := make(shiftplan.Calendar)
	cal.Set("山田太郎", "2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14", "08:45", "18:10")

	proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
	assert.Len(t, proposed, 1)
}

func TestApplySecondShiftSuffix(t *testing.T) {
	// A "_2" record reconciles against the same calendar date.
	cal := calendarWith("2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})
	r := rec("2026-08-14_2", "08:45", "18:10")

	proposed := Apply([]*attendance.Attendance{r}, cal, testEmployee, today)
	assert.Len(t, proposed, 1)
}
