package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is used for day-rollover arithmetic on overnight spans.
	MinutesPerDay = 1440

	// RoundingStep is the payroll rounding unit in minutes.
	RoundingStep = 30

	// latestClockOut caps a rounded clock-out so it never crosses midnight.
	latestClockOut = 23*60 + 30
)

// ToMinutes converts an "HH:MM" string to minutes since midnight.
// Empty or unparseable input yields 0; "no time set" is a legitimate state
// for open attendance records, so callers guard for unset separately.
func ToMinutes(t string) int {
	t = strings.TrimSpace(t)
	if t == "" {
		return 0
	}

	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// FromMinutes converts minutes since midnight to a zero-padded "HH:MM".
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SpanMinutes returns end-start in minutes, treating an end that is
// numerically before its start as belonging to the next day. This rule is
// for durations (worked time, breaks) only; shift boundaries are same-day
// and must be compared directly.
func SpanMinutes(start, end int) int {
	if end < start {
		end += MinutesPerDay
	}
	return end - start
}

// RoundClockInUp rounds a clock-in up to the next 30-minute boundary.
// Rounding is conservative for the employer: it only ever shortens the
// credited interval.
func RoundClockInUp(m int) int {
	if m%RoundingStep == 0 {
		return m
	}
	return (m/RoundingStep + 1) * RoundingStep
}

// RoundClockOutDown rounds a clock-out down to the previous 30-minute
// boundary, clamped at 23:30 so the rounded value never crosses midnight.
func RoundClockOutDown(m int) int {
	rounded := (m / RoundingStep) * RoundingStep
	if rounded > latestClockOut {
		return latestClockOut
	}
	return rounded
}

// FloorToHalfHour truncates a minute total to the nearest lower 30-minute
// multiple, for display and payroll totals.
func FloorToHalfHour(m int) int {
	if m < 0 {
		return 0
	}
	return (m / RoundingStep) * RoundingStep
}

// NormalizeClock zero-pads loose time strings from shift sheets:
// "9" becomes "09:00", "9:5" becomes "09:05". Returns "" when the input
// is not a time.
func NormalizeClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	hourPart := raw
	minutePart := "0"
	if i := strings.Index(raw, ":"); i >= 0 {
		hourPart = raw[:i]
		minutePart = raw[i+1:]
	}

	hours, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hours < 0 || hours > 23 {
		return ""
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil || minutes < 0 || minutes > 59 {
		return ""
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Overlap returns the overlap in minutes of [aStart,aEnd) and [bStart,bEnd),
// or 0 when the intervals are disjoint.
func Overlap(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}
