package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for persisted payroll records.
type PayrollRepository interface {
	// CreateRecord inserts one record. Returns
	// ErrPayrollRecordAlreadyExists when the employee already has a
	// record for the same period.
	CreateRecord(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)

	// GetByEmployeeAndPeriod retrieves a record by its natural key
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (PayrollRecord, error)

	// ListRecords retrieves records with employee names, newest first
	ListRecords(ctx context.Context) ([]PayrollRecord, error)
}
