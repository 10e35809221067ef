package credential

import "context"

// CredentialRepository defines data access methods for QR credentials.
type CredentialRepository interface {
	// Create issues a credential, normally inside the employee
	// registration transaction
	Create(ctx context.Context, cred Credential) (Credential, error)

	// GetByCode resolves a scanned code string to its credential.
	// Returns ErrCredentialNotFound for unknown codes.
	GetByCode(ctx context.Context, code string) (Credential, error)

	// GetByEmployeeID retrieves the employee's credential, active or not
	GetByEmployeeID(ctx context.Context, employeeID string) (Credential, error)

	// Update persists activation state and deactivation metadata
	Update(ctx context.Context, cred Credential) error
}
