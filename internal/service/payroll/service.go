package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/payroll"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

type payrollService struct {
	payrollRepo  payroll.PayrollRepository
	eventRepo    attendance.TimeEventRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	eventRepo attendance.TimeEventRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &payrollService{
		payrollRepo:  payrollRepo,
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

// Calculate implements payroll.PayrollService.
func (s *payrollService) Calculate(ctx context.Context, req payroll.PeriodRequest) (payroll.CalculatePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CalculatePayrollResponse{}, err
	}

	start, _ := civiltime.ParseDate(req.PeriodStart)
	end, _ := civiltime.ParseDate(req.PeriodEnd)

	lines, err := s.computePeriod(ctx, start, end)
	if err != nil {
		return payroll.CalculatePayrollResponse{}, err
	}

	summary := payroll.PayrollSummary{
		TotalHours:  decimal.Zero,
		TotalSalary: decimal.Zero,
	}
	for _, line := range lines {
		summary.TotalEmployees++
		summary.TotalHours = summary.TotalHours.Add(line.TotalHours)
		summary.TotalSalary = summary.TotalSalary.Add(line.GrossSalary)
	}

	return payroll.CalculatePayrollResponse{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		PerEmployee: lines,
		Summary:     summary,
	}, nil
}

// Generate implements payroll.PayrollService. The period is recomputed
// server-side from attendance data; a client cannot submit figures of its
// own. Employees that already hold a record for the period are skipped, so
// re-running a generation never duplicates or overwrites pay.
func (s *payrollService) Generate(ctx context.Context, req payroll.PeriodRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	start, _ := civiltime.ParseDate(req.PeriodStart)
	end, _ := civiltime.ParseDate(req.PeriodEnd)

	lines, err := s.computePeriod(ctx, start, end)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	created := 0
	for _, line := range lines {
		rec := payroll.PayrollRecord{
			ID:          uuid.NewString(),
			EmployeeID:  line.EmployeeID,
			PeriodStart: start,
			PeriodEnd:   end,
			TotalHours:  line.TotalHours,
			HourlyRate:  line.HourlyRate,
			GrossSalary: line.GrossSalary,
			Deductions:  decimal.Zero,
			NetSalary:   line.GrossSalary,
			Status:      payroll.RecordStatusApproved,
		}

		if _, err := s.payrollRepo.CreateRecord(ctx, rec); err != nil {
			if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
				continue
			}
			return payroll.GeneratePayrollResponse{}, err
		}
		created++
	}

	return payroll.GeneratePayrollResponse{RecordsCreated: created}, nil
}

// ListRecords implements payroll.PayrollService.
func (s *payrollService) ListRecords(ctx context.Context) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapToRecordResponse(rec))
	}

	return responses, nil
}

// computePeriod builds one payroll line per employee with payable hours in
// the period. Employees without a single complete positive-duration day are
// left out entirely.
func (s *payrollService) computePeriod(ctx context.Context, start, end time.Time) ([]payroll.EmployeePayrollSummary, error) {
	employees, err := s.employeeRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]attendance.TimeEvent)
	for _, ev := range events {
		byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
	}

	lines := make([]payroll.EmployeePayrollSummary, 0, len(employees))
	for _, emp := range employees {
		daysWorked, totalMinutes := tallyWorkedTime(byEmployee[emp.ID])
		if totalMinutes <= 0 {
			continue
		}

		hours := minutesToHours(totalMinutes)
		lines = append(lines, payroll.EmployeePayrollSummary{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			HourlyRate:   emp.HourlyRate,
			DaysWorked:   daysWorked,
			TotalHours:   hours,
			GrossSalary:  hours.Mul(emp.HourlyRate),
		})
	}

	return lines, nil
}

func mapToRecordResponse(rec payroll.PayrollRecord) payroll.PayrollRecordResponse {
	name := ""
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}

	return payroll.PayrollRecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: name,
		PeriodStart:  rec.PeriodStart.Format(civiltime.DateLayout),
		PeriodEnd:    rec.PeriodEnd.Format(civiltime.DateLayout),
		TotalHours:   rec.TotalHours,
		HourlyRate:   rec.HourlyRate,
		GrossSalary:  rec.GrossSalary,
		Deductions:   rec.Deductions,
		NetSalary:    rec.NetSalary,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt.In(civiltime.Zone).Format(time.RFC3339),
	}
}
