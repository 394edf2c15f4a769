package shiftplan

import (
	"testing"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultConfig = shiftplan.SheetConfig{
	NameColumn:    0,
	DateHeaderRow: 0,
	DataStartRow:  1,
}

func TestImportGridSingleCellLayout(t *testing.T) {
	grid := [][]string{
		{"", "1", "2", "3"},
		{"山田太郎", "9:00 18:00", "休", "朝"},
	}

	cal := make(shiftplan.Calendar)
	rows, skipped, assignments := ImportGrid(grid, defaultConfig, 2026, 8, "east", "sheet-a", false, cal)

	assert.Equal(t, 1, rows)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 3, assignments)

	a, ok := cal.Lookup("山田太郎", "2026-08-01")
	require.True(t, ok)
	assert.Equal(t, "09:00", a.Start)
	assert.Equal(t, "18:00", a.End)
	assert.False(t, a.IsDispatch)
	assert.Equal(t, "east", a.Location)
	assert.Equal(t, "sheet-a", a.SourceLabel)

	off, ok := cal.Lookup("山田太郎", "2026-08-02")
	require.True(t, ok)
	assert.True(t, off.IsOff)

	// The 朝 code always produces a dispatch assignment with its fixed
	// window, even in a non-dispatch sheet.
	coded, ok := cal.Lookup("山田太郎", "2026-08-03")
	require.True(t, ok)
	assert.Equal(t, "07:00", coded.Start)
	assert.Equal(t, "17:00", coded.End)
	assert.True(t, coded.IsDispatch)
}

func TestImportGridShiftCodes(t *testing.T) {
	grid := [][]string{
		{"", "1", "2", "3", "4"},
		{"佐藤花子", "朝", "昼", "夜", "通"},
	}

	cal := make(shiftplan.Calendar)
	ImportGrid(grid, defaultConfig, 2026, 8, "", "", true, cal)

	want := map[string][2]string{
		"2026-08-01": {"07:00", "17:00"},
		"2026-08-02": {"10:00", "20:00"},
		"2026-08-03": {"13:00", "23:00"},
		"2026-08-04": {"09:00", "18:00"},
	}
	for date, times := range want {
		a, ok := cal.Lookup("佐藤花子", date)
		require.True(t, ok, date)
		assert.Equal(t, times[0], a.Start, date)
		assert.Equal(t, times[1], a.End, date)
		assert.True(t, a.IsDispatch, date)
	}
}

func TestImportGridSplitLayout(t *testing.T) {
	// Day columns two apart: separate start/end columns per day.
	grid := [][]string{
		{"", "1", "", "2", ""},
		{"山田太郎", "9", "17:30", "10:15", "19"},
	}

	cal := make(shiftplan.Calendar)
	_, _, assignments := ImportGrid(grid, defaultConfig, 2026, 8, "", "", true, cal)
	assert.Equal(t, 2, assignments)

	a, ok := cal.Lookup("山田太郎", "2026-08-01")
	require.True(t, ok)
	assert.Equal(t, "09:00", a.Start)
	assert.Equal(t, "17:30", a.End)

	b, ok := cal.Lookup("山田太郎", "2026-08-02")
	require.True(t, ok)
	assert.Equal(t, "10:15", b.Start)
	assert.Equal(t, "19:00", b.End)
}

func TestImportGridDayMarkerHeader(t *testing.T) {
	grid := [][]string{
		{"", "1日", "2日"},
		{"山田太郎", "9:00 17:00", "10:00 18:00"},
	}

	cal := make(shiftplan.Calendar)
	_, _, assignments := ImportGrid(grid, defaultConfig, 2026, 8, "", "", false, cal)
	assert.Equal(t, 2, assignments)
}

func TestImportGridSkipsBlankNamesAndBadCells(t *testing.T) {
	grid := [][]string{
		{"", "1", "2"},
		{"", "9:00 17:00", "10:00 18:00"},
		{"山田太郎", "garbage", "9:00 17:00"},
		{"佐藤花子", "9:00", "10:00 18:00"}, // missing end half, skipped
	}

	cal := make(shiftplan.Calendar)
	rows, skipped, assignments := ImportGrid(grid, defaultConfig, 2026, 8, "", "", false, cal)

	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, assignments)

	_, ok := cal.Lookup("山田太郎", "2026-08-01")
	assert.False(t, ok)
	_, ok = cal.Lookup("佐藤花子", "2026-08-01")
	assert.False(t, ok)
}

func TestImportGridLastWriterWins(t *testing.T) {
	cal := make(shiftplan.Calendar)

	first := [][]string{
		{"", "1"},
		{"山田太郎", "9:00 17:00"},
	}
	second := [][]string{
		{"", "1"},
		{"山田太郎", "10:00 20:00"},
	}

	ImportGrid(first, defaultConfig, 2026, 8, "east", "sheet-a", false, cal)
	ImportGrid(second, defaultConfig, 2026, 8, "west", "sheet-b", true, cal)

	a, ok := cal.Lookup("山田太郎", "2026-08-01")
	require.True(t, ok)
	assert.Equal(t, "10:00", a.Start)
	assert.Equal(t, "west", a.Location)
	assert.Equal(t, "sheet-b", a.SourceLabel)
	assert.True(t, a.IsDispatch)
}

func TestImportGridNoDateHeader(t *testing.T) {
	grid := [][]string{
		{"name", "monday", "tuesday"},
		{"山田太郎", "9:00 17:00", "10:00 18:00"},
	}

	cal := make(shiftplan.Calendar)
	rows, skipped, assignments := ImportGrid(grid, defaultConfig, 2026, 8, "", "", false, cal)

	assert.Zero(t, rows)
	assert.Zero(t, skipped)
	assert.Zero(t, assignments)
}
