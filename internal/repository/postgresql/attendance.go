package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
)

type timeEventRepository struct {
	db *database.DB
}

func NewTimeEventRepository(db *database.DB) attendance.TimeEventRepository {
	return &timeEventRepository{db: db}
}

// Create implements attendance.TimeEventRepository. The unique index on
// (employee_id, date, action) backs the one-scan-per-action rule.
func (t *timeEventRepository) Create(ctx context.Context, ev attendance.TimeEvent) (attendance.TimeEvent, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_events (
			id, employee_id, date, action, minute_of_day, status,
			late_minutes, overtime_minutes, undertime_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		ev.ID, ev.EmployeeID, ev.Date, ev.Action, ev.MinuteOfDay, ev.Status,
		ev.LateMinutes, ev.OvertimeMinutes, ev.UndertimeMinutes,
	).Scan(&ev.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			if ev.Action == attendance.ActionTimeIn {
				return attendance.TimeEvent{}, attendance.ErrDuplicateTimeIn
			}
			return attendance.TimeEvent{}, attendance.ErrDuplicateTimeOut
		}
		return attendance.TimeEvent{}, fmt.Errorf("failed to create time event: %w", err)
	}

	return ev, nil
}

// ListByEmployeeAndDate implements attendance.TimeEventRepository.
func (t *timeEventRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.TimeEvent, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, date, action, minute_of_day, status,
			   late_minutes, overtime_minutes, undertime_minutes, created_at
		FROM time_events
		WHERE employee_id = $1 AND date = $2
		ORDER BY minute_of_day
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list time events by employee and date: %w", err)
	}
	defer rows.Close()

	return scanTimeEvents(rows, false)
}

// ListByEmployeeAndRange implements attendance.TimeEventRepository.
func (t *timeEventRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.TimeEvent, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, date, action, minute_of_day, status,
			   late_minutes, overtime_minutes, undertime_minutes, created_at
		FROM time_events
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, minute_of_day
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time events by employee and range: %w", err)
	}
	defer rows.Close()

	return scanTimeEvents(rows, false)
}

// ListByDate implements attendance.TimeEventRepository.
func (t *timeEventRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.TimeEvent, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT te.id, te.employee_id, te.date, te.action, te.minute_of_day, te.status,
			   te.late_minutes, te.overtime_minutes, te.undertime_minutes, te.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM time_events te
		JOIN employees e ON e.id = te.employee_id
		WHERE te.date = $1
		ORDER BY te.minute_of_day, employee_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list time events by date: %w", err)
	}
	defer rows.Close()

	return scanTimeEvents(rows, true)
}

// ListByRange implements attendance.TimeEventRepository.
func (t *timeEventRepository) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.TimeEvent, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, date, action, minute_of_day, status,
			   late_minutes, overtime_minutes, undertime_minutes, created_at
		FROM time_events
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_id, date, minute_of_day
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time events by range: %w", err)
	}
	defer rows.Close()

	return scanTimeEvents(rows, false)
}

func scanTimeEvents(rows pgx.Rows, withName bool) ([]attendance.TimeEvent, error) {
	var events []attendance.TimeEvent
	for rows.Next() {
		var ev attendance.TimeEvent
		dest := []any{
			&ev.ID, &ev.EmployeeID, &ev.Date, &ev.Action, &ev.MinuteOfDay, &ev.Status,
			&ev.LateMinutes, &ev.OvertimeMinutes, &ev.UndertimeMinutes, &ev.CreatedAt,
		}
		if withName {
			dest = append(dest, &ev.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan time event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time events: %w", err)
	}

	return events, nil
}
