package credential

import "errors"

var (
	ErrCredentialNotFound        = errors.New("credential not found or inactive")
	ErrCredentialAlreadyActive   = errors.New("credential is already active")
	ErrCredentialAlreadyInactive = errors.New("credential is already deactivated")
)
