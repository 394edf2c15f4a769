package payroll

import (
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/validator"
)

// SummaryRequest asks for one employee's monthly payroll summary.
// Holidays are the day numbers of public holidays in the month; the
// holiday source is the caller's concern.
type SummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Holidays   []int  `json:"holidays"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	for _, d := range r.Holidays {
		if d < 1 || d > 31 {
			errs = append(errs, validator.ValidationError{
				Field:   "holidays",
				Message: "holiday day numbers must be between 1 and 31",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
