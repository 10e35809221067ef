package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
)

// standardPolicy mirrors a common office setup: time-in window 07:00 to
// 08:00, 15 minute grace, official end 17:00, 8 required hours.
func standardPolicy() *policy.TimePolicy {
	return &policy.TimePolicy{
		TimeInStart:        7 * 60,
		TimeInEnd:          8 * 60,
		GracePeriodMinutes: 15,
		OfficialTimeOut:    17 * 60,
		RequiredHours:      decimal.NewFromInt(8),
	}
}

func TestClassifyTimeIn(t *testing.T) {
	pol := standardPolicy()

	tests := []struct {
		name        string
		pol         *policy.TimePolicy
		minute      int
		wantStatus  attendance.Status
		wantLateMin int
	}{
		{
			name:       "before the window is on time",
			pol:        pol,
			minute:     6*60 + 30,
			wantStatus: attendance.StatusOnTime,
		},
		{
			name:       "within the window is on time",
			pol:        pol,
			minute:     7*60 + 45,
			wantStatus: attendance.StatusOnTime,
		},
		{
			name:       "inside the grace period is on time",
			pol:        pol,
			minute:     8*60 + 10,
			wantStatus: attendance.StatusOnTime,
		},
		{
			name:       "exactly at the cutoff is on time",
			pol:        pol,
			minute:     8*60 + 15,
			wantStatus: attendance.StatusOnTime,
		},
		{
			name:        "one minute past the cutoff is late",
			pol:         pol,
			minute:      8*60 + 16,
			wantStatus:  attendance.StatusLate,
			wantLateMin: 1,
		},
		{
			name:        "lateness counts from the cutoff not the window end",
			pol:         pol,
			minute:      9 * 60,
			wantStatus:  attendance.StatusLate,
			wantLateMin: 45,
		},
		{
			name:       "no policy accepts any minute as on time",
			pol:        nil,
			minute:     13 * 60,
			wantStatus: attendance.StatusOnTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, lateMin := classifyTimeIn(tt.pol, tt.minute)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantLateMin, lateMin)
		})
	}
}

func TestClassifyTimeOut(t *testing.T) {
	pol := standardPolicy()

	tests := []struct {
		name          string
		pol           *policy.TimePolicy
		inMinute      int
		outMinute     int
		wantStatus    attendance.Status
		wantOvertime  int
		wantUndertime int
	}{
		{
			name:          "short day is undertime",
			pol:           pol,
			inMinute:      8 * 60,
			outMinute:     15 * 60,
			wantStatus:    attendance.StatusUndertime,
			wantUndertime: 60,
		},
		{
			name:         "past the official end with enough hours is overtime",
			pol:          pol,
			inMinute:     8 * 60,
			outMinute:    17*60 + 30,
			wantStatus:   attendance.StatusOvertime,
			wantOvertime: 30,
		},
		{
			name:       "full day ending at the official time is completed",
			pol:        pol,
			inMinute:   8 * 60,
			outMinute:  17 * 60,
			wantStatus: attendance.StatusCompleted,
		},
		{
			name:       "exactly the required minutes is not undertime",
			pol:        pol,
			inMinute:   9 * 60,
			outMinute:  17 * 60,
			wantStatus: attendance.StatusCompleted,
		},
		{
			name:          "undertime wins over overtime on a late start",
			pol:           pol,
			inMinute:      10 * 60,
			outMinute:     17*60 + 30,
			wantStatus:    attendance.StatusUndertime,
			wantUndertime: 30,
		},
		{
			name:       "no policy yields no status",
			pol:        nil,
			inMinute:   8 * 60,
			outMinute:  12 * 60,
			wantStatus: attendance.StatusNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, overtime, undertime := classifyTimeOut(tt.pol, tt.inMinute, tt.outMinute)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantOvertime, overtime)
			assert.Equal(t, tt.wantUndertime, undertime)
		})
	}
}
