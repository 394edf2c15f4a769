package calendar

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.August, 31},
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.April, 30},
	}
	for _, c := range cases {
		got := Month{Year: c.year, Month: c.month}.DaysIn()
		if got != c.want {
			t.Errorf("DaysIn(%d-%d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestWeekdayCount(t *testing.T) {
	// June 2026: starts on a Monday, 30 days, 22 weekdays.
	m := Month{Year: 2026, Month: time.June}

	if got := m.WeekdayCount(nil); got != 22 {
		t.Errorf("WeekdayCount(nil) = %d, want 22", got)
	}

	// A weekday holiday reduces the count, a weekend holiday does not.
	if got := m.WeekdayCount([]int{1}); got != 21 {
		t.Errorf("WeekdayCount([1]) = %d, want 21", got)
	}
	if got := m.WeekdayCount([]int{6}); got != 22 {
		t.Errorf("WeekdayCount([6]) = %d, want 22", got)
	}
}

func TestWeekendHolidayDays(t *testing.T) {
	// June 2026 weekends: 6,7,13,14,20,21,27,28.
	m := Month{Year: 2026, Month: time.June}

	days := m.WeekendHolidayDays([]int{7, 15})
	want := []int{6, 7, 13, 14, 15, 20, 21, 27, 28}
	if len(days) != len(want) {
		t.Fatalf("WeekendHolidayDays = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("WeekendHolidayDays = %v, want %v", days, want)
		}
	}
}
