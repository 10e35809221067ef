package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
)

var sixty = decimal.NewFromInt(60)

// dayPair holds the scans of one employee's calendar day.
type dayPair struct {
	inMinute  int
	outMinute int
	hasIn     bool
	hasOut    bool
}

// tallyWorkedTime folds one employee's events into payable time. Only days
// with a complete time-in/time-out pair and a positive duration count;
// open days contribute nothing. Returns the number of payable days and the
// total worked minutes.
func tallyWorkedTime(events []attendance.TimeEvent) (int, int) {
	days := make(map[time.Time]*dayPair)
	for _, ev := range events {
		pair := days[ev.Date]
		if pair == nil {
			pair = &dayPair{}
			days[ev.Date] = pair
		}
		switch ev.Action {
		case attendance.ActionTimeIn:
			pair.inMinute = ev.MinuteOfDay
			pair.hasIn = true
		case attendance.ActionTimeOut:
			pair.outMinute = ev.MinuteOfDay
			pair.hasOut = true
		}
	}

	var daysWorked, totalMinutes int
	for _, pair := range days {
		if !pair.hasIn || !pair.hasOut {
			continue
		}
		worked := pair.outMinute - pair.inMinute
		if worked <= 0 {
			continue
		}
		daysWorked++
		totalMinutes += worked
	}

	return daysWorked, totalMinutes
}

// minutesToHours converts worked minutes to decimal hours without rounding.
func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}
