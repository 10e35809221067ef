package report

import (
	"context"
	"time"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

type reportService struct {
	eventRepo    attendance.TimeEventRepository
	employeeRepo employee.EmployeeRepository
}

func NewReportService(
	eventRepo attendance.TimeEventRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &reportService{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

// Generate implements report.ReportService.
func (s *reportService) Generate(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	from, _ := civiltime.ParseDate(req.DateFrom)
	to, _ := civiltime.ParseDate(req.DateTo)
	totalDays := civiltime.DaysInclusive(from, to)

	employees, err := s.matchEmployees(ctx, req.EmployeeID)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	events, err := s.rangeEvents(ctx, req.EmployeeID, from, to)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	byEmployee := make(map[string][]attendance.TimeEvent)
	for _, ev := range events {
		byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
	}

	rows := make([]report.EmployeeAttendanceRow, 0, len(employees))
	for _, emp := range employees {
		row := aggregateEmployee(byEmployee[emp.ID], totalDays)
		row.EmployeeID = emp.ID
		row.EmployeeName = emp.FullName()
		rows = append(rows, row)
	}

	return report.AttendanceReport{
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		GeneratedAt: civiltime.Now().Format(time.RFC3339),
		PerEmployee: rows,
		Summary:     summarize(rows, totalDays),
	}, nil
}

// rangeEvents fetches the period's scans, scoped to a single employee when
// the report is filtered.
func (s *reportService) rangeEvents(ctx context.Context, employeeID *string, from, to time.Time) ([]attendance.TimeEvent, error) {
	if employeeID != nil && *employeeID != "" {
		return s.eventRepo.ListByEmployeeAndRange(ctx, *employeeID, from, to)
	}
	return s.eventRepo.ListByRange(ctx, from, to)
}

// matchEmployees resolves the optional employee filter. The report covers
// active employees only; a filter naming an unknown or deactivated employee
// matches nothing.
func (s *reportService) matchEmployees(ctx context.Context, employeeID *string) ([]employee.Employee, error) {
	if employeeID != nil && *employeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, *employeeID)
		if err != nil {
			return nil, err
		}
		if !emp.IsActive {
			return nil, report.ErrNoEmployeesMatched
		}
		return []employee.Employee{emp}, nil
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, report.ErrNoEmployeesMatched
	}

	return employees, nil
}
