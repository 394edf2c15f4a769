package shiftplan

import (
	"strings"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
)

// CandidateNames returns the spellings an employee may appear under in a
// shift sheet: the stored name and its variants, each also with spaces
// removed and with the name order reversed. Matching is deliberately a
// closed list: when none of the variants hits, the answer is "no match",
// never a guess.
func CandidateNames(emp employee.Employee) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	bases := append([]string{emp.FullName}, emp.NameVariants...)
	for _, base := range bases {
		add(base)
		fields := strings.Fields(base)
		if len(fields) < 2 {
			continue
		}
		add(strings.Join(fields, ""))

		reversed := make([]string, 0, len(fields))
		for i := len(fields) - 1; i >= 0; i-- {
			reversed = append(reversed, fields[i])
		}
		add(strings.Join(reversed, " "))
		add(strings.Join(reversed, ""))
	}

	return out
}

// FindAssignment looks up the calendar entry for an employee on a date,
// trying each candidate name in order.
func FindAssignment(cal shiftplan.Calendar, emp employee.Employee, date string) (shiftplan.Assignment, bool) {
	for _, name := range CandidateNames(emp) {
		if a, ok := cal.Lookup(name, date); ok {
			return a, true
		}
	}
	return shiftplan.Assignment{}, false
}
