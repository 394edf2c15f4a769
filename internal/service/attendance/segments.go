package attendance

import (
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/timeutil"
)

// DispatchDailyCapMinutes caps the dispatch share of one day at 8 hours.
// Coverage beyond the cap is dropped from the dispatch total and is not
// reassigned to part-time.
const DispatchDailyCapMinutes = 480

// SegmentTotals is the worked-minutes breakdown for one record against
// its matched shift.
type SegmentTotals struct {
	RawMinutes      int `json:"raw_minutes"`
	RoundedMinutes  int `json:"rounded_minutes"`
	DispatchMinutes int `json:"dispatch_minutes"`
	PartTimeMinutes int `json:"part_time_minutes"`
}

// ComputeSegments derives worked minutes and the dispatch/part-time
// split for one attendance record. It is a pure function: same inputs,
// same outputs, and it never reads the clock. A nil shift means the day
// has no matched assignment.
func ComputeSegments(rec *attendance.Attendance, shift *shiftplan.Assignment) SegmentTotals {
	var totals SegmentTotals

	if !rec.IsComplete() {
		return totals
	}

	breakMins := rec.BreakMinutes()
	in := timeutil.ToMinutes(rec.ClockIn)
	out := timeutil.ToMinutes(rec.ClockOut)

	if raw := timeutil.SpanMinutes(in, out) - breakMins; raw > 0 {
		totals.RawMinutes = raw
	}

	roundedIn := timeutil.RoundClockInUp(in)
	roundedOut := timeutil.RoundClockOutDown(out)

	// Only raw overnight punches roll over. On a same-day interval
	// shorter than the rounding gap the rounded endpoints can cross,
	// which means zero credited minutes, not a wrapped day.
	var roundedSpan int
	switch {
	case out < in:
		roundedSpan = timeutil.SpanMinutes(roundedIn, roundedOut)
	case roundedOut > roundedIn:
		roundedSpan = roundedOut - roundedIn
	}
	if rounded := roundedSpan - breakMins; rounded > 0 {
		totals.RoundedMinutes = rounded
	}

	switch {
	case shift == nil || !shift.IsDispatch:
		totals.PartTimeMinutes = totals.RoundedMinutes
	case shift.DispatchRange != nil || shift.PartTimeRange != nil:
		totals.DispatchMinutes, totals.PartTimeMinutes = splitByRanges(rec, shift)
	default:
		// Dispatch-typed shift without explicit sub-ranges: the first
		// eight hours count as dispatch, the remainder as part-time.
		totals.DispatchMinutes = totals.RoundedMinutes
		if totals.DispatchMinutes > DispatchDailyCapMinutes {
			totals.DispatchMinutes = DispatchDailyCapMinutes
		}
		totals.PartTimeMinutes = totals.RoundedMinutes - totals.DispatchMinutes
	}

	return totals
}

// splitByRanges intersects the applied interval with the shift's
// explicit dispatch and part-time sub-ranges. Break time is attributed
// to whichever range it falls inside; a break spanning both ranges is
// split at the range boundary. Shift boundaries are same-day, so the
// comparisons here are direct, without day rollover.
func splitByRanges(rec *attendance.Attendance, shift *shiftplan.Assignment) (dispatchMins, partTimeMins int) {
	appliedIn, appliedOut := rec.AppliedInterval()
	if appliedIn == "" || appliedOut == "" {
		return 0, 0
	}
	aStart := timeutil.ToMinutes(appliedIn)
	aEnd := timeutil.ToMinutes(appliedOut)

	dispatchMins = rangeMinutes(rec, aStart, aEnd, shift.DispatchRange)
	partTimeMins = rangeMinutes(rec, aStart, aEnd, shift.PartTimeRange)

	if dispatchMins > DispatchDailyCapMinutes {
		dispatchMins = DispatchDailyCapMinutes
	}
	return dispatchMins, partTimeMins
}

// rangeMinutes is the overlap of the applied interval with one
// sub-range, minus the break time falling inside that overlap.
func rangeMinutes(rec *attendance.Attendance, aStart, aEnd int, r *shiftplan.TimeRange) int {
	if r == nil {
		return 0
	}
	rStart := timeutil.ToMinutes(r.Start)
	rEnd := timeutil.ToMinutes(r.End)

	covered := timeutil.Overlap(aStart, aEnd, rStart, rEnd)
	if covered == 0 {
		return 0
	}

	// The overlap window shared by applied interval and sub-range.
	winStart := aStart
	if rStart > winStart {
		winStart = rStart
	}
	winEnd := aEnd
	if rEnd < winEnd {
		winEnd = rEnd
	}

	for _, b := range rec.Breaks {
		if b.Start == "" || b.End == "" {
			continue
		}
		covered -= timeutil.Overlap(timeutil.ToMinutes(b.Start), timeutil.ToMinutes(b.End), winStart, winEnd)
	}
	if covered < 0 {
		covered = 0
	}
	return covered
}
