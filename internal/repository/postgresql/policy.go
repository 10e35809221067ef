package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.TimePolicyRepository {
	return &policyRepository{db: db}
}

// Get implements policy.TimePolicyRepository. The system keeps a single
// policy row, so no identifier is taken.
func (p *policyRepository) Get(ctx context.Context) (policy.TimePolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT time_in_start, time_in_end, grace_period_minutes,
			   official_time_out, required_hours, created_at, updated_at
		FROM time_policies
		WHERE id = 1
	`

	var pol policy.TimePolicy
	err := q.QueryRow(ctx, query).Scan(
		&pol.TimeInStart, &pol.TimeInEnd, &pol.GracePeriodMinutes,
		&pol.OfficialTimeOut, &pol.RequiredHours, &pol.CreatedAt, &pol.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.TimePolicy{}, policy.ErrPolicyNotConfigured
		}
		return policy.TimePolicy{}, fmt.Errorf("failed to get time policy: %w", err)
	}

	return pol, nil
}

// Upsert implements policy.TimePolicyRepository.
func (p *policyRepository) Upsert(ctx context.Context, pol policy.TimePolicy) (policy.TimePolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO time_policies (
			id, time_in_start, time_in_end, grace_period_minutes,
			official_time_out, required_hours
		)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			time_in_start = EXCLUDED.time_in_start,
			time_in_end = EXCLUDED.time_in_end,
			grace_period_minutes = EXCLUDED.grace_period_minutes,
			official_time_out = EXCLUDED.official_time_out,
			required_hours = EXCLUDED.required_hours,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pol.TimeInStart, pol.TimeInEnd, pol.GracePeriodMinutes,
		pol.OfficialTimeOut, pol.RequiredHours,
	).Scan(&pol.CreatedAt, &pol.UpdatedAt)
	if err != nil {
		return policy.TimePolicy{}, fmt.Errorf("failed to upsert time policy: %w", err)
	}

	return pol, nil
}
