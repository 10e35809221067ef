package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
)

type exportService struct{}

func NewExportService() report.ExportService {
	return &exportService{}
}

// ToPDF implements report.ExportService.
func (s *exportService) ToPDF(rep report.AttendanceReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 8, fmt.Sprintf("Period: %s to %s", rep.DateFrom, rep.DateTo))
	pdf.Ln(10)

	widths := []float64{70, 28, 24, 24, 20, 28, 36, 32}
	headers := []string{
		"Employee", "Days Worked", "Absent", "On Time", "Late",
		"Late Min", "Overtime Min", "Attendance",
	}

	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.Cell(widths[i], 8, h)
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, line := range rep.PerEmployee {
		cells := []string{
			line.EmployeeName,
			fmt.Sprintf("%d", line.DaysWorked),
			fmt.Sprintf("%d", line.AbsentCount),
			fmt.Sprintf("%d", line.OnTimeCount),
			fmt.Sprintf("%d", line.LateCount),
			fmt.Sprintf("%d", line.TotalLateMinutes),
			fmt.Sprintf("%d", line.TotalOvertimeMinutes),
			fmt.Sprintf("%d%%", line.AttendanceRate),
		}
		for i, c := range cells {
			pdf.Cell(widths[i], 7, c)
		}
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(90, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	metrics := []struct {
		label string
		value string
	}{
		{"Total Days", fmt.Sprintf("%d", rep.Summary.TotalDays)},
		{"Total Employees", fmt.Sprintf("%d", rep.Summary.TotalEmployees)},
		{"On-Time Rate", fmt.Sprintf("%.2f%%", rep.Summary.OnTimeRate)},
		{"Late Rate", fmt.Sprintf("%.2f%%", rep.Summary.LateRate)},
		{"Absent Rate", fmt.Sprintf("%.2f%%", rep.Summary.AbsentRate)},
	}
	for _, m := range metrics {
		pdf.Cell(60, 7, m.label)
		pdf.Cell(60, 7, m.value)
		pdf.Ln(7)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generated at: %s", rep.GeneratedAt))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}
