package shiftplan

import (
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/validator"
)

// SheetConfig locates the interesting cells inside a raw sheet export.
type SheetConfig struct {
	NameColumn    int `json:"name_column"`
	DateHeaderRow int `json:"date_header_row"`
	DataStartRow  int `json:"data_start_row"`
}

// ImportSheetRequest carries one already-fetched sheet export as
// comma-separated text. Transport of the sheet itself is the caller's
// concern.
type ImportSheetRequest struct {
	Year       int         `json:"year"`
	Month      int         `json:"month"`
	Location   string      `json:"location"`
	IsDispatch bool        `json:"is_dispatch"`
	Label      string      `json:"label"`
	CSV        string      `json:"csv"`
	Config     SheetConfig `json:"config"`
}

func (r *ImportSheetRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if validator.IsEmpty(r.CSV) {
		errs = append(errs, validator.ValidationError{
			Field:   "csv",
			Message: "csv sheet content is required",
		})
	}

	if r.Config.NameColumn < 0 || r.Config.DateHeaderRow < 0 || r.Config.DataStartRow <= r.Config.DateHeaderRow {
		errs = append(errs, validator.ValidationError{
			Field:   "config",
			Message: "sheet config rows/columns are inconsistent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportSummaryResponse reports what one sheet import produced.
type ImportSummaryResponse struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	Rows        int `json:"rows"`
	SkippedRows int `json:"skipped_rows"`
	Assignments int `json:"assignments"`
}
