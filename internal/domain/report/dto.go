package report

import (
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	DateFrom   string
	DateTo     string
	EmployeeID *string
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.DateFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be a valid YYYY-MM-DD date",
		})
	}

	to, toOK := validator.IsValidDate(r.DateTo)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be a valid YYYY-MM-DD date",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be before date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeAttendanceRow is one employee's line in the attendance report.
type EmployeeAttendanceRow struct {
	EmployeeID           string `json:"employee_id"`
	EmployeeName         string `json:"employee_name"`
	DaysWorked           int    `json:"days_worked"`
	AbsentCount          int    `json:"absent_count"`
	OnTimeCount          int    `json:"on_time_count"`
	LateCount            int    `json:"late_count"`
	TotalLateMinutes     int    `json:"total_late_minutes"`
	TotalOvertimeMinutes int    `json:"total_overtime_minutes"`
	AttendanceRate       int    `json:"attendance_rate"`
}

// ReportSummary aggregates the per-employee rows.
type ReportSummary struct {
	TotalDays      int     `json:"total_days"`
	TotalEmployees int     `json:"total_employees"`
	DaysWorked     int     `json:"days_worked"`
	AbsentCount    int     `json:"absent_count"`
	OnTimeCount    int     `json:"on_time_count"`
	LateCount      int     `json:"late_count"`
	OnTimeRate     float64 `json:"on_time_rate"`
	LateRate       float64 `json:"late_rate"`
	AbsentRate     float64 `json:"absent_rate"`
}

type AttendanceReport struct {
	DateFrom    string                  `json:"date_from"`
	DateTo      string                  `json:"date_to"`
	GeneratedAt string                  `json:"generated_at"`
	PerEmployee []EmployeeAttendanceRow `json:"per_employee"`
	Summary     ReportSummary           `json:"summary"`
}
