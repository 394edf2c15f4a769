package shiftplan

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
)

type ShiftPlanServiceImpl struct {
	db *database.DB
	shiftplan.ShiftPlanRepository
}

func NewShiftPlanService(db *database.DB, shiftPlanRepo shiftplan.ShiftPlanRepository) shiftplan.ShiftPlanService {
	return &ShiftPlanServiceImpl{
		db:                  db,
		ShiftPlanRepository: shiftPlanRepo,
	}
}

// ImportSheet implements shiftplan.ShiftPlanService.
func (s *ShiftPlanServiceImpl) ImportSheet(ctx context.Context, req shiftplan.ImportSheetRequest) (shiftplan.ImportSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftplan.ImportSummaryResponse{}, err
	}

	grid, err := parseCSVGrid(req.CSV)
	if err != nil {
		return shiftplan.ImportSummaryResponse{}, fmt.Errorf("failed to parse sheet csv: %w", err)
	}

	cal := make(shiftplan.Calendar)
	rows, skipped, count := ImportGrid(grid, req.Config, req.Year, req.Month, req.Location, req.Label, req.IsDispatch, cal)

	stored := make([]shiftplan.StoredAssignment, 0, len(cal))
	for key, assignment := range cal {
		stored = append(stored, shiftplan.StoredAssignment{Key: key, Assignment: assignment})
	}

	if err := s.ShiftPlanRepository.UpsertAssignments(ctx, stored); err != nil {
		return shiftplan.ImportSummaryResponse{}, fmt.Errorf("failed to store shift assignments: %w", err)
	}

	slog.Info("Shift sheet imported",
		"year", req.Year,
		"month", req.Month,
		"location", req.Location,
		"rows", rows,
		"skipped_rows", skipped,
		"assignments", count)

	return shiftplan.ImportSummaryResponse{
		Year:        req.Year,
		Month:       req.Month,
		Rows:        rows,
		SkippedRows: skipped,
		Assignments: count,
	}, nil
}

// GetCalendar implements shiftplan.ShiftPlanService.
func (s *ShiftPlanServiceImpl) GetCalendar(ctx context.Context, year, month int) (shiftplan.Calendar, error) {
	cal, err := s.ShiftPlanRepository.GetCalendar(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift calendar: %w", err)
	}
	return cal, nil
}

// parseCSVGrid reads comma-separated sheet text into a cell grid.
// Rows may have ragged lengths.
func parseCSVGrid(raw string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return reader.ReadAll()
}
