package payroll

import (
	"github.com/shopspring/decimal"
)

// BonusAward is one bonus rule that fired for the month. Amounts are
// fixed constants from the rule table, never derived from hourly wage.
type BonusAward struct {
	Rule   string          `json:"rule"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlySummary aggregates one employee's approved days for one month.
// Minutes are recomputed from the applied intervals, not raw punches,
// and displayed floored to 30-minute multiples.
type MonthlySummary struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	DaysWorked      int `json:"days_worked"`
	TotalMinutes    int `json:"total_minutes"`
	DispatchMinutes int `json:"dispatch_minutes"`
	PartTimeMinutes int `json:"part_time_minutes"`

	DispatchHours decimal.Decimal `json:"dispatch_hours"`
	PartTimeHours decimal.Decimal `json:"part_time_hours"`

	Bonuses    []BonusAward    `json:"bonuses"`
	BonusTotal decimal.Decimal `json:"bonus_total"`
}
