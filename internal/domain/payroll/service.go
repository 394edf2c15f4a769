package payroll

import (
	"context"
)

// PayrollService computes monthly summaries over approved days.
type PayrollService interface {
	MonthlySummary(ctx context.Context, req SummaryRequest) (MonthlySummary, error)
}
