package attendance

import "time"

// Action is the kind of scan event.
type Action string

const (
	ActionTimeIn  Action = "time_in"
	ActionTimeOut Action = "time_out"
)

// Status is the classification computed at write time. A time-out recorded
// while no policy is configured carries no status.
type Status string

const (
	StatusOnTime    Status = "on_time"
	StatusLate      Status = "late"
	StatusUndertime Status = "undertime"
	StatusOvertime  Status = "overtime"
	StatusCompleted Status = "completed"
	StatusNone      Status = ""
)

// TimeEvent is an immutable attendance fact: one accepted scan. At most one
// time-in and one time-out exist per (employee, date); events are never
// mutated or deleted.
type TimeEvent struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	Action           Action
	MinuteOfDay      int
	Status           Status
	LateMinutes      int
	OvertimeMinutes  int
	UndertimeMinutes int
	CreatedAt        time.Time

	// DTO
	EmployeeName *string
}
