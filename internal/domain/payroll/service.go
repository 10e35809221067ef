package payroll

import "context"

// PayrollService defines business logic for payroll computation.
type PayrollService interface {
	// Calculate previews payroll for a period. Pure read: re-running it
	// with unchanged attendance data yields identical output.
	Calculate(ctx context.Context, req PeriodRequest) (CalculatePayrollResponse, error)

	// Generate recomputes the period server-side and persists one record
	// per employee with qualifying hours, skipping employees that already
	// have a record for the period.
	Generate(ctx context.Context, req PeriodRequest) (GeneratePayrollResponse, error)

	// ListRecords retrieves persisted payroll records
	ListRecords(ctx context.Context) ([]PayrollRecordResponse, error)
}
