package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

func day(s string) time.Time {
	d, err := civiltime.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func event(date string, action attendance.Action, minute int) attendance.TimeEvent {
	return attendance.TimeEvent{
		Date:        day(date),
		Action:      action,
		MinuteOfDay: minute,
	}
}

func TestTallyWorkedTime(t *testing.T) {
	tests := []struct {
		name        string
		events      []attendance.TimeEvent
		wantDays    int
		wantMinutes int
	}{
		{
			name:     "no events",
			wantDays: 0,
		},
		{
			name: "one complete day",
			events: []attendance.TimeEvent{
				event("2025-03-03", attendance.ActionTimeIn, 8*60),
				event("2025-03-03", attendance.ActionTimeOut, 17*60),
			},
			wantDays:    1,
			wantMinutes: 540,
		},
		{
			name: "open day without a time-out contributes nothing",
			events: []attendance.TimeEvent{
				event("2025-03-03", attendance.ActionTimeIn, 8*60),
			},
			wantDays: 0,
		},
		{
			name: "mixed complete and open days",
			events: []attendance.TimeEvent{
				event("2025-03-03", attendance.ActionTimeIn, 8*60),
				event("2025-03-03", attendance.ActionTimeOut, 16*60),
				event("2025-03-04", attendance.ActionTimeIn, 8*60),
				event("2025-03-05", attendance.ActionTimeIn, 9*60),
				event("2025-03-05", attendance.ActionTimeOut, 18*60),
			},
			wantDays:    2,
			wantMinutes: 480 + 540,
		},
		{
			name: "zero duration day is dropped",
			events: []attendance.TimeEvent{
				event("2025-03-03", attendance.ActionTimeIn, 8*60),
				event("2025-03-03", attendance.ActionTimeOut, 8*60),
			},
			wantDays: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, minutes := tallyWorkedTime(tt.events)
			assert.Equal(t, tt.wantDays, days)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestMinutesToHours(t *testing.T) {
	assert.Equal(t, "8", minutesToHours(480).String())
	assert.Equal(t, "8.5", minutesToHours(510).String())
	assert.True(t, minutesToHours(0).IsZero())
}
