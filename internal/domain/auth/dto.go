package auth

import "github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VerifyPinRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Pin            string `json:"pin"`
}

func (r *VerifyPinRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ChallengeToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "challenge_token",
			Message: "challenge_token is required",
		})
	}

	if validator.IsEmpty(r.Pin) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PinChallengeResponse is the first-step result: the password checked out
// and the caller must now present the PIN together with this token.
type PinChallengeResponse struct {
	ChallengeToken string `json:"challenge_token"`
	ExpiresIn      int    `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
