package employee

import (
	"context"
)

// EmployeeRepository is the profile provider: identity, name variants,
// employment type, tenure and the lives-alone flag. The engine only
// reads it.
type EmployeeRepository interface {
	// GetByID retrieves one employee profile
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees
	ListActive(ctx context.Context) ([]Employee, error)
}
