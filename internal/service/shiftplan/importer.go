package shiftplan

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/timeutil"
)

// shiftCode is a fixed single-character code with a fixed work window.
// Coded cells always produce dispatch-typed assignments regardless of
// any other content in the cell.
type shiftCode struct {
	Start string
	End   string
}

var shiftCodes = map[string]shiftCode{
	"朝": {Start: "07:00", End: "17:00"},
	"昼": {Start: "10:00", End: "20:00"},
	"夜": {Start: "13:00", End: "23:00"},
	"通": {Start: "09:00", End: "18:00"},
}

// offTokens are the markers meaning a scheduled day off.
var offTokens = []string{"休", "公休", "×", "OFF"}

// dateHeaderRegex matches a day-number cell: digits optionally followed
// by a single day-marker character ("14", "14日").
var dateHeaderRegex = regexp.MustCompile(`^([0-9]{1,2})\D?$`)

// layoutMode distinguishes how per-day values are laid out in a sheet.
type layoutMode int

const (
	// layoutSingleCell: one cell per day holding "start end".
	layoutSingleCell layoutMode = iota
	// layoutSplit: separate start and end columns per day.
	layoutSplit
)

// ImportGrid parses one sheet export (rows of cells) into calendar
// assignments. Malformed rows and unparseable cells are skipped, never
// fatal: the import continues across the rest of the sheet.
func ImportGrid(grid [][]string, cfg shiftplan.SheetConfig, year, month int, location, label string, isDispatch bool, cal shiftplan.Calendar) (rows, skippedRows, assignments int) {
	if cfg.DateHeaderRow >= len(grid) {
		return 0, 0, 0
	}

	dayColumns := scanDateHeader(grid[cfg.DateHeaderRow])
	if len(dayColumns) == 0 {
		return 0, 0, 0
	}
	mode := detectLayout(dayColumns)

	for rowIdx := cfg.DataStartRow; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		rows++

		name := ""
		if cfg.NameColumn < len(row) {
			name = strings.TrimSpace(row[cfg.NameColumn])
		}
		if name == "" {
			skippedRows++
			continue
		}

		for day, col := range dayColumns {
			assignment, ok := parseDayCell(row, col, mode, location, label, isDispatch)
			if !ok {
				continue
			}
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			cal.Set(name, date, assignment)
			assignments++
		}
	}

	return rows, skippedRows, assignments
}

// scanDateHeader maps day numbers to their column index.
func scanDateHeader(header []string) map[int]int {
	dayColumns := make(map[int]int)
	for col, cell := range header {
		m := dateHeaderRegex.FindStringSubmatch(strings.TrimSpace(cell))
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 31 {
			continue
		}
		if _, seen := dayColumns[day]; !seen {
			dayColumns[day] = col
		}
	}
	return dayColumns
}

// detectLayout decides between split and single-cell layout: when the
// two lowest-numbered days sit exactly two columns apart, the sheet has
// separate start/end columns per day.
func detectLayout(dayColumns map[int]int) layoutMode {
	if len(dayColumns) < 2 {
		return layoutSingleCell
	}

	days := make([]int, 0, len(dayColumns))
	for day := range dayColumns {
		days = append(days, day)
	}
	sort.Ints(days)

	if dayColumns[days[1]]-dayColumns[days[0]] == 2 {
		return layoutSplit
	}
	return layoutSingleCell
}

// parseDayCell reads one day's value(s) from a data row. The bool result
// is false when the day yields no assignment.
func parseDayCell(row []string, col int, mode layoutMode, location, label string, isDispatch bool) (shiftplan.Assignment, bool) {
	if col >= len(row) {
		return shiftplan.Assignment{}, false
	}
	raw := strings.TrimSpace(row[col])

	// A known shift code wins over whatever else the cell contains.
	if code, ok := shiftCodes[raw]; ok {
		return shiftplan.Assignment{
			Start:       code.Start,
			End:         code.End,
			IsDispatch:  true,
			Location:    location,
			SourceLabel: label,
		}, true
	}

	if isOffToken(raw) {
		return shiftplan.Assignment{
			IsOff:       true,
			Location:    location,
			SourceLabel: label,
		}, true
	}

	var startRaw, endRaw string
	switch mode {
	case layoutSplit:
		startRaw = raw
		if col+1 < len(row) {
			endRaw = strings.TrimSpace(row[col+1])
		}
	default:
		fields := strings.Fields(raw)
		if len(fields) >= 2 {
			startRaw, endRaw = fields[0], fields[1]
		}
	}

	start := timeutil.NormalizeClock(startRaw)
	end := timeutil.NormalizeClock(endRaw)
	if start == "" || end == "" {
		return shiftplan.Assignment{}, false
	}

	return shiftplan.Assignment{
		Start:       start,
		End:         end,
		IsDispatch:  isDispatch,
		Location:    location,
		SourceLabel: label,
	}, true
}

func isOffToken(raw string) bool {
	for _, token := range offTokens {
		if strings.EqualFold(raw, token) {
			return true
		}
	}
	return false
}
