package attendance

import (
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
)

// classifyTimeIn labels a time-in scan against the active policy. A nil
// policy means no policy is configured, so the scan is accepted as on time
// with no lateness. The late cutoff is exclusive: arriving exactly at the
// end of the grace period still counts as on time.
func classifyTimeIn(pol *policy.TimePolicy, minuteOfDay int) (attendance.Status, int) {
	if pol == nil {
		return attendance.StatusOnTime, 0
	}

	cutoff := pol.LateCutoff()
	if minuteOfDay > cutoff {
		return attendance.StatusLate, minuteOfDay - cutoff
	}

	return attendance.StatusOnTime, 0
}

// classifyTimeOut labels a time-out scan. Undertime takes priority over
// overtime: a shift can run past the official end and still fall short of
// the required hours. Returns the status, overtime minutes and undertime
// minutes. A nil policy yields no status at all.
func classifyTimeOut(pol *policy.TimePolicy, timeInMinute, timeOutMinute int) (attendance.Status, int, int) {
	if pol == nil {
		return attendance.StatusNone, 0, 0
	}

	worked := timeOutMinute - timeInMinute
	required := pol.RequiredMinutes()

	if worked < required {
		return attendance.StatusUndertime, 0, required - worked
	}

	if timeOutMinute > pol.OfficialTimeOut {
		return attendance.StatusOvertime, timeOutMinute - pol.OfficialTimeOut, 0
	}

	return attendance.StatusCompleted, 0, 0
}
