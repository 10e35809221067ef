package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

func day(s string) time.Time {
	d, err := civiltime.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func timeInEvent(date string, status attendance.Status, lateMinutes int) attendance.TimeEvent {
	return attendance.TimeEvent{
		Date:        day(date),
		Action:      attendance.ActionTimeIn,
		Status:      status,
		LateMinutes: lateMinutes,
	}
}

func timeOutEvent(date string, status attendance.Status, overtimeMinutes int) attendance.TimeEvent {
	return attendance.TimeEvent{
		Date:            day(date),
		Action:          attendance.ActionTimeOut,
		Status:          status,
		OvertimeMinutes: overtimeMinutes,
	}
}

func TestAggregateEmployee(t *testing.T) {
	t.Run("full week of on-time days", func(t *testing.T) {
		var events []attendance.TimeEvent
		for d := 1; d <= 7; d++ {
			date := time.Date(2025, 1, d, 0, 0, 0, 0, civiltime.Zone).Format(civiltime.DateLayout)
			events = append(events,
				timeInEvent(date, attendance.StatusOnTime, 0),
				timeOutEvent(date, attendance.StatusCompleted, 0),
			)
		}

		row := aggregateEmployee(events, 7)

		assert.Equal(t, 7, row.DaysWorked)
		assert.Equal(t, 0, row.AbsentCount)
		assert.Equal(t, 7, row.OnTimeCount)
		assert.Equal(t, 0, row.LateCount)
		assert.Equal(t, 100, row.AttendanceRate)
	})

	t.Run("mixed days with lateness and overtime", func(t *testing.T) {
		events := []attendance.TimeEvent{
			timeInEvent("2025-01-01", attendance.StatusOnTime, 0),
			timeOutEvent("2025-01-01", attendance.StatusOvertime, 30),
			timeInEvent("2025-01-02", attendance.StatusLate, 12),
			timeOutEvent("2025-01-02", attendance.StatusCompleted, 0),
			timeInEvent("2025-01-04", attendance.StatusLate, 5),
		}

		row := aggregateEmployee(events, 7)

		assert.Equal(t, 3, row.DaysWorked)
		assert.Equal(t, 4, row.AbsentCount)
		assert.Equal(t, 1, row.OnTimeCount)
		assert.Equal(t, 2, row.LateCount)
		assert.Equal(t, 17, row.TotalLateMinutes)
		assert.Equal(t, 30, row.TotalOvertimeMinutes)
		assert.Equal(t, 43, row.AttendanceRate)
	})

	t.Run("no events means fully absent", func(t *testing.T) {
		row := aggregateEmployee(nil, 5)

		assert.Equal(t, 0, row.DaysWorked)
		assert.Equal(t, 5, row.AbsentCount)
		assert.Equal(t, 0, row.AttendanceRate)
	})
}

func TestSummarize(t *testing.T) {
	rows := []report.EmployeeAttendanceRow{
		{DaysWorked: 7, AbsentCount: 0, OnTimeCount: 7, LateCount: 0},
		{DaysWorked: 5, AbsentCount: 2, OnTimeCount: 2, LateCount: 3},
	}

	summary := summarize(rows, 7)

	assert.Equal(t, 7, summary.TotalDays)
	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, 12, summary.DaysWorked)
	assert.Equal(t, 2, summary.AbsentCount)
	assert.Equal(t, 9, summary.OnTimeCount)
	assert.Equal(t, 3, summary.LateCount)
	assert.InDelta(t, 75.0, summary.OnTimeRate, 0.001)
	assert.InDelta(t, 25.0, summary.LateRate, 0.001)
	// 2 missed days out of 14 employee-days
	assert.InDelta(t, 14.29, summary.AbsentRate, 0.001)
}

func TestSummarizeEmptyRange(t *testing.T) {
	summary := summarize(nil, 0)

	assert.Zero(t, summary.OnTimeRate)
	assert.Zero(t, summary.LateRate)
	assert.Zero(t, summary.AbsentRate)
}
