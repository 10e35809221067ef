package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
)

func sampleReport() report.AttendanceReport {
	return report.AttendanceReport{
		DateFrom:    "2025-01-01",
		DateTo:      "2025-01-07",
		GeneratedAt: "2025-01-08T09:00:00+08:00",
		PerEmployee: []report.EmployeeAttendanceRow{
			{
				EmployeeID:     "e1",
				EmployeeName:   "Ana Reyes",
				DaysWorked:     7,
				OnTimeCount:    7,
				AttendanceRate: 100,
			},
			{
				EmployeeID:           "e2",
				EmployeeName:         "Ben Cruz",
				DaysWorked:           5,
				AbsentCount:          2,
				OnTimeCount:          2,
				LateCount:            3,
				TotalLateMinutes:     42,
				TotalOvertimeMinutes: 30,
				AttendanceRate:       71,
			},
		},
		Summary: report.ReportSummary{
			TotalDays:      7,
			TotalEmployees: 2,
			DaysWorked:     12,
			AbsentCount:    2,
			OnTimeCount:    9,
			LateCount:      3,
			OnTimeRate:     75,
			LateRate:       25,
			AbsentRate:     14.29,
		},
	}
}

func TestToExcel(t *testing.T) {
	svc := NewExportService()

	body, err := svc.ToExcel(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, body)

	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(body, []byte("PK")))
}

func TestToPDF(t *testing.T) {
	svc := NewExportService()

	body, err := svc.ToPDF(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, body)

	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
