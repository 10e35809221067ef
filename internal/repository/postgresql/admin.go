package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/admin"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}

// GetByEmail implements admin.AdminRepository.
func (a *adminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, full_name, email, password_hash, pin_hash, is_active, created_at, updated_at
		FROM admins
		WHERE email = $1 AND is_active = TRUE
	`

	var adm admin.Admin
	err := q.QueryRow(ctx, query, email).Scan(
		&adm.ID, &adm.FullName, &adm.Email, &adm.PasswordHash, &adm.PinHash,
		&adm.IsActive, &adm.CreatedAt, &adm.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return adm, nil
}

// GetByID implements admin.AdminRepository.
func (a *adminRepository) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, full_name, email, password_hash, pin_hash, is_active, created_at, updated_at
		FROM admins
		WHERE id = $1 AND is_active = TRUE
	`

	var adm admin.Admin
	err := q.QueryRow(ctx, query, id).Scan(
		&adm.ID, &adm.FullName, &adm.Email, &adm.PasswordHash, &adm.PinHash,
		&adm.IsActive, &adm.CreatedAt, &adm.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by ID: %w", err)
	}

	return adm, nil
}
