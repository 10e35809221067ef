package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"
)

type PeriodRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a valid YYYY-MM-DD date",
		})
	}

	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a valid YYYY-MM-DD date",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must not be before period_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeePayrollSummary is one employee's line in a payroll preview.
type EmployeePayrollSummary struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	DaysWorked   int             `json:"days_worked"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
}

type PayrollSummary struct {
	TotalEmployees int             `json:"total_employees"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
}

type CalculatePayrollResponse struct {
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	PerEmployee []EmployeePayrollSummary `json:"per_employee"`
	Summary     PayrollSummary           `json:"summary"`
}

type GeneratePayrollResponse struct {
	RecordsCreated int `json:"records_created"`
}

type PayrollRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
}
