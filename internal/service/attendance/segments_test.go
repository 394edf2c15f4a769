package attendance

import (
	"testing"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/stretchr/testify/assert"
)

func record(clockIn, clockOut string, breaks ...attendance.BreakPeriod) *attendance.Attendance {
	return &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		DateKey:    "2026-08-14",
		ClockIn:    clockIn,
		ClockOut:   clockOut,
		Breaks:     breaks,
	}
}

func TestComputeSegmentsRawAndRounded(t *testing.T) {
	// 08:45-17:20 with a 30 minute lunch: raw span 515 minus 30 = 485,
	// rounded interval 09:00-17:00 = 480 minus 30 = 450.
	rec := record("08:45", "17:20", attendance.BreakPeriod{Start: "12:00", End: "12:30"})

	totals := ComputeSegments(rec, nil)

	assert.Equal(t, 485, totals.RawMinutes)
	assert.Equal(t, 450, totals.RoundedMinutes)
	assert.Equal(t, 0, totals.DispatchMinutes)
	assert.Equal(t, 450, totals.PartTimeMinutes)
}

func TestComputeSegmentsIncompleteDay(t *testing.T) {
	rec := record("09:00", "")

	totals := ComputeSegments(rec, nil)

	assert.Zero(t, totals.RawMinutes)
	assert.Zero(t, totals.RoundedMinutes)
	assert.Zero(t, totals.DispatchMinutes)
	assert.Zero(t, totals.PartTimeMinutes)
}

func TestComputeSegmentsOvernight(t *testing.T) {
	// 22:00-06:00 rolls over midnight for both the raw and the rounded
	// span; both punches already sit on 30-minute boundaries.
	rec := record("22:00", "06:00")

	totals := ComputeSegments(rec, nil)

	assert.Equal(t, 480, totals.RawMinutes)
	assert.Equal(t, 480, totals.RoundedMinutes)
}

func TestComputeSegmentsShortIntervalRoundsToZero(t *testing.T) {
	// 09:10-09:25 rounds to 09:30-09:00: the endpoints cross, so the
	// rounded interval is empty rather than a wrapped day.
	rec := record("09:10", "09:25")

	totals := ComputeSegments(rec, nil)

	assert.Equal(t, 15, totals.RawMinutes)
	assert.Zero(t, totals.RoundedMinutes)
	assert.Zero(t, totals.PartTimeMinutes)
}

func TestComputeSegmentsRoundedNeverExceedsRaw(t *testing.T) {
	for _, punches := range [][2]string{
		{"09:10", "09:25"},
		{"09:10", "09:40"},
		{"08:45", "17:20"},
		{"22:10", "06:05"},
		{"00:05", "00:10"},
	} {
		rec := record(punches[0], punches[1])
		totals := ComputeSegments(rec, nil)
		assert.LessOrEqual(t, totals.RoundedMinutes, totals.RawMinutes,
			"punches %s-%s", punches[0], punches[1])
	}
}

func TestComputeSegmentsNonDispatchShift(t *testing.T) {
	rec := record("09:00", "18:00")
	shift := &shiftplan.Assignment{Start: "09:00", End: "18:00", IsDispatch: false}

	totals := ComputeSegments(rec, shift)

	assert.Equal(t, 0, totals.DispatchMinutes)
	assert.Equal(t, totals.RoundedMinutes, totals.PartTimeMinutes)
}

func TestComputeSegmentsDispatchHeuristicCap(t *testing.T) {
	// Dispatch shift without sub-ranges: first 480 minutes are dispatch,
	// the remainder part-time.
	rec := record("07:00", "18:00") // 660 rounded
	shift := &shiftplan.Assignment{Start: "07:00", End: "18:00", IsDispatch: true}

	totals := ComputeSegments(rec, shift)

	assert.Equal(t, 660, totals.RoundedMinutes)
	assert.Equal(t, 480, totals.DispatchMinutes)
	assert.Equal(t, 180, totals.PartTimeMinutes)
}

func TestComputeSegmentsExplicitRanges(t *testing.T) {
	rec := record("07:00", "20:00", attendance.BreakPeriod{Start: "12:00", End: "13:00"})
	shift := &shiftplan.Assignment{
		Start:         "07:00",
		End:           "20:00",
		IsDispatch:    true,
		DispatchRange: &shiftplan.TimeRange{Start: "07:00", End: "15:00"},
		PartTimeRange: &shiftplan.TimeRange{Start: "15:00", End: "20:00"},
	}

	totals := ComputeSegments(rec, shift)

	// Dispatch window 07:00-15:00 = 480, minus the 60 minute break that
	// falls inside it = 420. Part-time window 15:00-20:00 = 300.
	assert.Equal(t, 420, totals.DispatchMinutes)
	assert.Equal(t, 300, totals.PartTimeMinutes)
}

func TestComputeSegmentsBreakSplitAcrossRanges(t *testing.T) {
	// A break straddling the boundary is split between the two windows.
	rec := record("07:00", "20:00", attendance.BreakPeriod{Start: "14:30", End: "15:30"})
	shift := &shiftplan.Assignment{
		Start:         "07:00",
		End:           "20:00",
		IsDispatch:    true,
		DispatchRange: &shiftplan.TimeRange{Start: "07:00", End: "15:00"},
		PartTimeRange: &shiftplan.TimeRange{Start: "15:00", End: "20:00"},
	}

	totals := ComputeSegments(rec, shift)

	assert.Equal(t, 450, totals.DispatchMinutes) // 480 - 30
	assert.Equal(t, 270, totals.PartTimeMinutes) // 300 - 30
}

func TestComputeSegmentsDispatchCapDropsExcess(t *testing.T) {
	// Coverage of the dispatch window beyond eight hours is dropped, not
	// reassigned to part-time.
	rec := record("06:00", "20:00")
	shift := &shiftplan.Assignment{
		Start:         "06:00",
		End:           "20:00",
		IsDispatch:    true,
		DispatchRange: &shiftplan.TimeRange{Start: "06:00", End: "16:00"},
		PartTimeRange: &shiftplan.TimeRange{Start: "16:00", End: "20:00"},
	}

	totals := ComputeSegments(rec, shift)

	assert.Equal(t, 480, totals.DispatchMinutes)
	assert.Equal(t, 240, totals.PartTimeMinutes)
}

func TestComputeSegmentsUsesAppliedInterval(t *testing.T) {
	// With an application carrying applied times, the range split works
	// off the claimed interval, not the raw punches.
	rec := record("06:45", "20:10")
	rec.Application = &attendance.Application{
		Status:     attendance.StatusPending,
		AppliedIn:  "10:00",
		AppliedOut: "14:00",
	}
	shift := &shiftplan.Assignment{
		Start:         "07:00",
		End:           "20:00",
		IsDispatch:    true,
		DispatchRange: &shiftplan.TimeRange{Start: "07:00", End: "15:00"},
	}

	totals := ComputeSegments(rec, shift)

	assert.Equal(t, 240, totals.DispatchMinutes)
	assert.Equal(t, 0, totals.PartTimeMinutes)
}

func TestComputeSegmentsIsPure(t *testing.T) {
	rec := record("08:45", "17:20", attendance.BreakPeriod{Start: "12:00", End: "12:30"})
	before := *rec

	first := ComputeSegments(rec, nil)
	second := ComputeSegments(rec, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *rec)
}
