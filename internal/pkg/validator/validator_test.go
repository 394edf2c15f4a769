package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "17:05"}
	invalid := []string{"24:00", "9:30", "09:60", "0900", "", "ab:cd"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidDateKey(t *testing.T) {
	valid := []string{"2026-08-15", "2026-08-15_2", "2026-12-31_3"}
	invalid := []string{"2026-08-15_1", "2026-08-15_", "2026-13-01", "20260815", "", "_2"}
	for _, key := range valid {
		if !IsValidDateKey(key) {
			t.Errorf("IsValidDateKey(%q) = false, want true", key)
		}
	}
	for _, key := range invalid {
		if IsValidDateKey(key) {
			t.Errorf("IsValidDateKey(%q) = true, want false", key)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}
