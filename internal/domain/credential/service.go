package credential

import "context"

// CredentialService drives the Active/Inactive lifecycle of an employee's
// QR credential.
type CredentialService interface {
	// Get retrieves the employee's credential
	Get(ctx context.Context, employeeID string) (CredentialResponse, error)

	// Deactivate transitions to Inactive, recording reason, acting admin
	// and timestamp
	Deactivate(ctx context.Context, req DeactivateCredentialRequest) (CredentialResponse, error)

	// Activate transitions back to Active and clears all deactivation
	// metadata
	Activate(ctx context.Context, employeeID string) (CredentialResponse, error)
}
