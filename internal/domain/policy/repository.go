package policy

import "context"

// TimePolicyRepository stores the single company-wide policy row.
type TimePolicyRepository interface {
	// Get returns the active policy, or ErrPolicyNotConfigured when none
	// has ever been saved
	Get(ctx context.Context) (TimePolicy, error)

	// Upsert creates the policy row on first save and updates it in place
	// afterwards
	Upsert(ctx context.Context, p TimePolicy) (TimePolicy, error)
}
