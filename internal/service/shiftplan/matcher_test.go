package shiftplan

import (
	"testing"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateNames(t *testing.T) {
	emp := employee.Employee{
		FullName:     "山田 太郎",
		NameVariants: []string{"ヤマダ タロウ"},
	}

	names := CandidateNames(emp)

	assert.Contains(t, names, "山田 太郎")
	assert.Contains(t, names, "山田太郎")
	assert.Contains(t, names, "太郎 山田")
	assert.Contains(t, names, "太郎山田")
	assert.Contains(t, names, "ヤマダ タロウ")
	assert.Contains(t, names, "ヤマダタロウ")

	// The stored spelling is tried first.
	assert.Equal(t, "山田 太郎", names[0])
}

func TestCandidateNamesDeduplicates(t *testing.T) {
	emp := employee.Employee{
		FullName:     "山田 太郎",
		NameVariants: []string{"山田 太郎", "山田太郎"},
	}

	names := CandidateNames(emp)
	seen := make(map[string]int)
	for _, n := range names {
		seen[n]++
	}
	for n, count := range seen {
		assert.Equal(t, 1, count, n)
	}
}

func TestCandidateNamesSingleWord(t *testing.T) {
	emp := employee.Employee{FullName: "山田太郎"}

	names := CandidateNames(emp)
	assert.Equal(t, []string{"山田太郎"}, names)
}

func TestFindAssignment(t *testing.T) {
	emp := employee.Employee{FullName: "山田 太郎"}

	cal := make(shiftplan.Calendar)
	cal.Set("太郎山田", "2026-08-14", shiftplan.Assignment{Start: "09:00", End: "18:00"})

	a, ok := FindAssignment(cal, emp, "2026-08-14")
	require.True(t, ok)
	assert.Equal(t, "09:00", a.Start)

	// A closed list: an unlisted spelling is never matched.
	_, ok = FindAssignment(cal, emp, "2026-08-15")
	assert.False(t, ok)
}
