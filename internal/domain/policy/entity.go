package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimePolicy is the company-wide working-hour configuration. A single row
// applies to all employees; clock fields are minutes since civil midnight.
type TimePolicy struct {
	TimeInStart        int
	TimeInEnd          int
	GracePeriodMinutes int
	OfficialTimeOut    int
	RequiredHours      decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LateCutoff is the minute-of-day after which a time-in is late.
func (p TimePolicy) LateCutoff() int {
	return p.TimeInEnd + p.GracePeriodMinutes
}

// RequiredMinutes converts the required working hours to whole minutes.
func (p TimePolicy) RequiredMinutes() int {
	return int(p.RequiredHours.Mul(decimal.NewFromInt(60)).IntPart())
}
