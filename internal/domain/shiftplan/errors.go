package shiftplan

import "errors"

// Shift plan domain errors
var (
	ErrNoDateHeader       = errors.New("no date header row found in sheet")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
)
