package admin

import "context"

// AdminRepository defines data access for admin accounts.
type AdminRepository interface {
	// GetByEmail retrieves an active admin by email
	GetByEmail(ctx context.Context, email string) (Admin, error)

	// GetByID retrieves an active admin by ID
	GetByID(ctx context.Context, id string) (Admin, error)
}
