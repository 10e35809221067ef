package policy

import "errors"

var (
	// ErrPolicyNotConfigured is the explicit "none configured" result.
	// Callers must treat it as "skip classification", never as a failure
	// of the scan itself.
	ErrPolicyNotConfigured = errors.New("no time policy configured")
)
