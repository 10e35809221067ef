package report

import (
	"math"
	"time"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
)

// aggregateEmployee folds one employee's events into a report row. A day
// counts as worked when any event exists on it; punctuality counts come
// from time-in statuses and overtime minutes from time-outs.
func aggregateEmployee(events []attendance.TimeEvent, totalDays int) report.EmployeeAttendanceRow {
	var row report.EmployeeAttendanceRow
	seen := make(map[time.Time]bool)

	for _, ev := range events {
		if !seen[ev.Date] {
			seen[ev.Date] = true
			row.DaysWorked++
		}

		switch ev.Action {
		case attendance.ActionTimeIn:
			switch ev.Status {
			case attendance.StatusOnTime:
				row.OnTimeCount++
			case attendance.StatusLate:
				row.LateCount++
				row.TotalLateMinutes += ev.LateMinutes
			}
		case attendance.ActionTimeOut:
			row.TotalOvertimeMinutes += ev.OvertimeMinutes
		}
	}

	row.AbsentCount = totalDays - row.DaysWorked
	if totalDays > 0 {
		row.AttendanceRate = int(math.Round(float64(row.DaysWorked) / float64(totalDays) * 100))
	}

	return row
}

// summarize rolls the per-employee rows up into range-wide totals. On-time
// and late rates are shares of all classified time-ins; the absent rate is
// the share of missed days out of every employee-day in the range.
func summarize(rows []report.EmployeeAttendanceRow, totalDays int) report.ReportSummary {
	summary := report.ReportSummary{
		TotalDays:      totalDays,
		TotalEmployees: len(rows),
	}

	for _, row := range rows {
		summary.DaysWorked += row.DaysWorked
		summary.AbsentCount += row.AbsentCount
		summary.OnTimeCount += row.OnTimeCount
		summary.LateCount += row.LateCount
	}

	classified := summary.OnTimeCount + summary.LateCount
	if classified > 0 {
		summary.OnTimeRate = roundRate(float64(summary.OnTimeCount) / float64(classified) * 100)
		summary.LateRate = roundRate(float64(summary.LateCount) / float64(classified) * 100)
	}

	employeeDays := totalDays * len(rows)
	if employeeDays > 0 {
		summary.AbsentRate = roundRate(float64(summary.AbsentCount) / float64(employeeDays) * 100)
	}

	return summary
}

func roundRate(v float64) float64 {
	return math.Round(v*100) / 100
}
