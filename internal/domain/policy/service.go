package policy

import "context"

// TimePolicyService defines business logic for the time policy.
type TimePolicyService interface {
	// Save validates and upserts the policy
	Save(ctx context.Context, req SaveTimePolicyRequest) (TimePolicyResponse, error)

	// Get returns the active policy or ErrPolicyNotConfigured
	Get(ctx context.Context) (TimePolicyResponse, error)
}
