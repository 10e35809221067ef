package attendance

import (
	"context"
	"time"
)

// TimeEventRepository defines data access for the append-only attendance log.
// The store enforces uniqueness of (employee, date, action) so the service's
// check-then-insert cannot race into a duplicate.
type TimeEventRepository interface {
	// Create appends a new immutable event
	Create(ctx context.Context, ev TimeEvent) (TimeEvent, error)

	// ListByEmployeeAndDate retrieves the employee's events for one date,
	// driving the per-day state machine
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]TimeEvent, error)

	// ListByEmployeeAndRange retrieves the employee's events for an
	// inclusive date range, ordered by date then minute
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]TimeEvent, error)

	// ListByDate retrieves all events for one date with employee names,
	// for the admin day log
	ListByDate(ctx context.Context, date time.Time) ([]TimeEvent, error)

	// ListByRange retrieves all events for an inclusive date range across
	// every employee, ordered by employee then date then minute
	ListByRange(ctx context.Context, from, to time.Time) ([]TimeEvent, error)
}
