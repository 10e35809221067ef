package auth

import "context"

// AuthService implements the two-step admin login: password, then PIN.
type AuthService interface {
	// Login verifies email+password and returns a short-lived PIN
	// challenge token
	Login(ctx context.Context, req LoginRequest) (PinChallengeResponse, error)

	// VerifyPin verifies the challenge token and PIN and returns the
	// access token
	VerifyPin(ctx context.Context, req VerifyPinRequest) (TokenResponse, error)
}
