package employee

import "context"

// EmployeeService defines business logic for employee administration
type EmployeeService interface {
	// Register creates a new employee from an admin registration
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	// Update mutates an existing employee's details
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves employees, optionally restricted to active ones
	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)

	// Deactivate soft-deletes an employee; attendance and payroll history
	// is preserved
	Deactivate(ctx context.Context, id string) error

	// Reactivate restores a previously deactivated employee
	Reactivate(ctx context.Context, id string) error
}
