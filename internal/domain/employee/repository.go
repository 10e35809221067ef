package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email, used for uniqueness checks
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Update mutates name, email and hourly rate
	Update(ctx context.Context, emp Employee) error

	// SetActive flips the active flag; records are never hard-deleted
	SetActive(ctx context.Context, id string, active bool) error

	// List retrieves employees, optionally restricted to active ones
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
}
