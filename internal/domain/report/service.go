package report

import "context"

// ReportService defines business logic for attendance reporting.
type ReportService interface {
	// Generate aggregates attendance over a date range, optionally for a
	// single employee
	Generate(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}
