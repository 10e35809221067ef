package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordStatus string

const (
	RecordStatusPending  RecordStatus = "pending"
	RecordStatusApproved RecordStatus = "approved"
	RecordStatusPaid     RecordStatus = "paid"
)

// PayrollRecord is a persisted snapshot of one employee's pay for one
// period. Immutable once created; the hourly rate is captured at
// generation time.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalHours  decimal.Decimal
	HourlyRate  decimal.Decimal
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      RecordStatus
	CreatedAt   time.Time

	// DTO
	EmployeeName *string
}
