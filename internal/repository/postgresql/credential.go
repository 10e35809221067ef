package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
)

type credentialRepository struct {
	db *database.DB
}

func NewCredentialRepository(db *database.DB) credential.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create implements credential.CredentialRepository.
func (c *credentialRepository) Create(ctx context.Context, cred credential.Credential) (credential.Credential, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO credentials (id, employee_id, code, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, cred.ID, cred.EmployeeID, cred.Code, cred.IsActive).Scan(&cred.CreatedAt)
	if err != nil {
		return credential.Credential{}, fmt.Errorf("failed to create credential: %w", err)
	}

	return cred, nil
}

// GetByCode implements credential.CredentialRepository.
func (c *credentialRepository) GetByCode(ctx context.Context, code string) (credential.Credential, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, code, is_active, created_at,
			   deactivated_at, deactivated_by, deactivation_reason
		FROM credentials
		WHERE code = $1
	`

	var cred credential.Credential
	err := q.QueryRow(ctx, query, code).Scan(
		&cred.ID, &cred.EmployeeID, &cred.Code, &cred.IsActive, &cred.CreatedAt,
		&cred.DeactivatedAt, &cred.DeactivatedBy, &cred.DeactivationReason,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.Credential{}, credential.ErrCredentialNotFound
		}
		return credential.Credential{}, fmt.Errorf("failed to get credential by code: %w", err)
	}

	return cred, nil
}

// GetByEmployeeID implements credential.CredentialRepository.
func (c *credentialRepository) GetByEmployeeID(ctx context.Context, employeeID string) (credential.Credential, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, code, is_active, created_at,
			   deactivated_at, deactivated_by, deactivation_reason
		FROM credentials
		WHERE employee_id = $1
	`

	var cred credential.Credential
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&cred.ID, &cred.EmployeeID, &cred.Code, &cred.IsActive, &cred.CreatedAt,
		&cred.DeactivatedAt, &cred.DeactivatedBy, &cred.DeactivationReason,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.Credential{}, credential.ErrCredentialNotFound
		}
		return credential.Credential{}, fmt.Errorf("failed to get credential by employee ID: %w", err)
	}

	return cred, nil
}

// Update implements credential.CredentialRepository.
func (c *credentialRepository) Update(ctx context.Context, cred credential.Credential) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE credentials
		SET is_active = $1, deactivated_at = $2, deactivated_by = $3, deactivation_reason = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		cred.IsActive, cred.DeactivatedAt, cred.DeactivatedBy, cred.DeactivationReason, cred.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.ErrCredentialNotFound
		}
		return fmt.Errorf("failed to update credential: %w", err)
	}

	return nil
}
