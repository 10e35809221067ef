package admin

import "time"

// Admin is a back-office account. Login is two-factor by business rule:
// password first, then PIN.
type Admin struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	PinHash      string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
