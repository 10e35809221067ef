package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/payroll"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// CreateRecord implements payroll.PayrollRepository. The unique index on
// (employee_id, period_start, period_end) rejects a second record for the
// same employee and period.
func (p *payrollRepository) CreateRecord(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_start, period_end, total_hours,
			hourly_rate, gross_salary, deductions, net_salary, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd, rec.TotalHours,
		rec.HourlyRate, rec.GrossSalary, rec.Deductions, rec.NetSalary, rec.Status,
	).Scan(&rec.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, period_start, period_end, total_hours,
			   hourly_rate, gross_salary, deductions, net_salary, status, created_at
		FROM payroll_records
		WHERE employee_id = $1 AND period_start = $2 AND period_end = $3
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, periodStart, periodEnd).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd, &rec.TotalHours,
		&rec.HourlyRate, &rec.GrossSalary, &rec.Deductions, &rec.NetSalary, &rec.Status, &rec.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ListRecords implements payroll.PayrollRepository.
func (p *payrollRepository) ListRecords(ctx context.Context) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period_start, pr.period_end, pr.total_hours,
			   pr.hourly_rate, pr.gross_salary, pr.deductions, pr.net_salary, pr.status, pr.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		ORDER BY pr.created_at DESC, employee_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd, &rec.TotalHours,
			&rec.HourlyRate, &rec.GrossSalary, &rec.Deductions, &rec.NetSalary, &rec.Status, &rec.CreatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}
