package payroll

import (
	"time"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/payroll"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/calendar"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// Bonus rule table. Every amount is a fixed yen constant, never derived
// from hourly wage. Each rule is evaluated independently and the awards
// are additive.
var (
	housingAllowanceJunior = decimal.NewFromInt(10000)
	housingAllowanceSenior = decimal.NewFromInt(20000)

	weekendFullAttendanceBonus    = decimal.NewFromInt(15000)
	weekendPartialAttendanceBonus = decimal.NewFromInt(5000)

	attendanceThresholdBonus = decimal.NewFromInt(10000)

	firstOfMonthPerHalfHour    = decimal.NewFromInt(300)
	firstOfMonthMinimum        = decimal.NewFromInt(1000)
	firstOfMonthLateNightExtra = decimal.NewFromInt(2000)
)

const (
	housingSeniorTenureYears = 3
	weekendPartialMinDays    = 5
	attendanceThresholdDays  = 18
	lateNightCutoff          = 22 * 60 // 22:00
)

// firstOfMonthDay is the data the first-of-month rule needs about the
// day numbered "1".
type firstOfMonthDay struct {
	WorkedMinutes int
	ClockOut      string
}

// evaluateBonuses runs every bonus rule for one employee's month.
// attendedDays holds the day numbers with an approved application.
func evaluateBonuses(
	emp employee.Employee,
	month calendar.Month,
	holidays []int,
	attendedDays map[int]bool,
	firstDay *firstOfMonthDay,
) []payroll.BonusAward {
	var awards []payroll.BonusAward

	if award, ok := housingAllowance(emp, month, holidays, len(attendedDays)); ok {
		awards = append(awards, award)
	}
	if award, ok := weekendAttendanceBonus(emp, month, holidays, attendedDays); ok {
		awards = append(awards, award)
	}
	if award, ok := attendanceCountBonus(emp, len(attendedDays)); ok {
		awards = append(awards, award)
	}
	if award, ok := firstOfMonthBonus(firstDay); ok {
		awards = append(awards, award)
	}

	return awards
}

// housingAllowance: dispatch-typed or full-time employees, or anyone who
// attended at least every weekday of the month, qualify when they live
// alone. The amount is tenure-tiered.
func housingAllowance(emp employee.Employee, month calendar.Month, holidays []int, daysWorked int) (payroll.BonusAward, bool) {
	if !emp.LivesAlone {
		return payroll.BonusAward{}, false
	}

	qualifies := emp.IsDispatch() ||
		emp.EmploymentType == employee.TypeFullTime ||
		daysWorked >= month.WeekdayCount(holidays)
	if !qualifies {
		return payroll.BonusAward{}, false
	}

	amount := housingAllowanceJunior
	if emp.TenureYears(month.Date(1)) >= housingSeniorTenureYears {
		amount = housingAllowanceSenior
	}
	return payroll.BonusAward{Rule: "housing_allowance", Amount: amount}, true
}

// weekendAttendanceBonus: full attendance of every weekend/holiday day
// earns the full bonus, five or more such days the smaller one. Dispatch
// employees only.
func weekendAttendanceBonus(emp employee.Employee, month calendar.Month, holidays []int, attendedDays map[int]bool) (payroll.BonusAward, bool) {
	if !emp.IsDispatch() {
		return payroll.BonusAward{}, false
	}

	weekendDays := month.WeekendHolidayDays(holidays)
	if len(weekendDays) == 0 {
		return payroll.BonusAward{}, false
	}

	attended := 0
	for _, day := range weekendDays {
		if attendedDays[day] {
			attended++
		}
	}

	switch {
	case attended == len(weekendDays):
		return payroll.BonusAward{Rule: "weekend_full_attendance", Amount: weekendFullAttendanceBonus}, true
	case attended >= weekendPartialMinDays:
		return payroll.BonusAward{Rule: "weekend_attendance", Amount: weekendPartialAttendanceBonus}, true
	}
	return payroll.BonusAward{}, false
}

// attendanceCountBonus: 18 or more attended days, dispatch only.
func attendanceCountBonus(emp employee.Employee, daysWorked int) (payroll.BonusAward, bool) {
	if !emp.IsDispatch() || daysWorked < attendanceThresholdDays {
		return payroll.BonusAward{}, false
	}
	return payroll.BonusAward{Rule: "attendance_threshold", Amount: attendanceThresholdBonus}, true
}

// firstOfMonthBonus: a per-30-minutes-worked amount with a fixed
// minimum for the day numbered "1", plus a flat extra when that day's
// clock-out is after 22:00.
func firstOfMonthBonus(day *firstOfMonthDay) (payroll.BonusAward, bool) {
	if day == nil || day.WorkedMinutes <= 0 {
		return payroll.BonusAward{}, false
	}

	halfHours := int64(day.WorkedMinutes / timeutil.RoundingStep)
	amount := firstOfMonthPerHalfHour.Mul(decimal.NewFromInt(halfHours))
	if amount.LessThan(firstOfMonthMinimum) {
		amount = firstOfMonthMinimum
	}
	if day.ClockOut != "" && timeutil.ToMinutes(day.ClockOut) > lateNightCutoff {
		amount = amount.Add(firstOfMonthLateNightExtra)
	}
	return payroll.BonusAward{Rule: "first_of_month", Amount: amount}, true
}

// monthOf is a convenience constructor.
func monthOf(year, month int) calendar.Month {
	return calendar.Month{Year: year, Month: time.Month(month)}
}
