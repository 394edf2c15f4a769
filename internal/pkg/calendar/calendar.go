package calendar

import (
	"time"
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the time.Time for a day number inside the month.
func (m Month) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the given day of the month is a Saturday or
// Sunday.
func (m Month) IsWeekend(day int) bool {
	wd := m.Date(day).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekdayCount returns the number of Monday-to-Friday days in the month,
// minus any listed holidays that fall on a weekday.
func (m Month) WeekdayCount(holidays []int) int {
	holidaySet := make(map[int]bool, len(holidays))
	for _, d := range holidays {
		holidaySet[d] = true
	}

	count := 0
	for day := 1; day <= m.DaysIn(); day++ {
		if m.IsWeekend(day) || holidaySet[day] {
			continue
		}
		count++
	}
	return count
}

// WeekendHolidayDays returns the day numbers in the month that are either
// weekend days or listed holidays, ascending and deduplicated.
func (m Month) WeekendHolidayDays(holidays []int) []int {
	holidaySet := make(map[int]bool, len(holidays))
	for _, d := range holidays {
		holidaySet[d] = true
	}

	var days []int
	for day := 1; day <= m.DaysIn(); day++ {
		if m.IsWeekend(day) || holidaySet[day] {
			days = append(days, day)
		}
	}
	return days
}
