package export

import (
	"fmt"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// ToExcel implements report.ExportService.
func (s *exportService) ToExcel(rep report.AttendanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "ATTENDANCE REPORT")
	f.MergeCell(sheet, "A1", "H1")
	f.SetCellStyle(sheet, "A1", "H1", headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	f.SetCellValue(sheet, "A3", "Period:")
	f.SetCellValue(sheet, "B3", fmt.Sprintf("%s to %s", rep.DateFrom, rep.DateTo))
	f.SetCellValue(sheet, "A4", "Generated:")
	f.SetCellValue(sheet, "B4", rep.GeneratedAt)

	headers := []string{
		"Employee", "Days Worked", "Absent", "On Time", "Late",
		"Late Minutes", "Overtime Minutes", "Attendance Rate",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A6", "H6", headerStyle)

	row := 7
	for _, line := range rep.PerEmployee {
		values := []interface{}{
			line.EmployeeName, line.DaysWorked, line.AbsentCount,
			line.OnTimeCount, line.LateCount, line.TotalLateMinutes,
			line.TotalOvertimeMinutes, fmt.Sprintf("%d%%", line.AttendanceRate),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	summaryData := [][]interface{}{
		{"Total Days", rep.Summary.TotalDays},
		{"Total Employees", rep.Summary.TotalEmployees},
		{"On-Time Rate", fmt.Sprintf("%.2f%%", rep.Summary.OnTimeRate)},
		{"Late Rate", fmt.Sprintf("%.2f%%", rep.Summary.LateRate)},
		{"Absent Rate", fmt.Sprintf("%.2f%%", rep.Summary.AbsentRate)},
	}
	for _, pair := range summaryData {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, labelCell, pair[0])
		f.SetCellValue(sheet, valueCell, pair[1])
		row++
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "H", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
