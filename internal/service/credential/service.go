package credential

import (
	"context"
	"time"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

type credentialService struct {
	credentialRepo credential.CredentialRepository
}

func NewCredentialService(credentialRepo credential.CredentialRepository) credential.CredentialService {
	return &credentialService{credentialRepo: credentialRepo}
}

// Get implements credential.CredentialService.
func (s *credentialService) Get(ctx context.Context, employeeID string) (credential.CredentialResponse, error) {
	cred, err := s.credentialRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return credential.CredentialResponse{}, err
	}

	return mapToCredentialResponse(cred), nil
}

// Deactivate implements credential.CredentialService. Deactivation is
// recorded, not deleted, so past scans stay attributable.
func (s *credentialService) Deactivate(ctx context.Context, req credential.DeactivateCredentialRequest) (credential.CredentialResponse, error) {
	if err := req.Validate(); err != nil {
		return credential.CredentialResponse{}, err
	}

	cred, err := s.credentialRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return credential.CredentialResponse{}, err
	}
	if !cred.IsActive {
		return credential.CredentialResponse{}, credential.ErrCredentialAlreadyInactive
	}

	now := civiltime.Now()
	cred.IsActive = false
	cred.DeactivatedAt = &now
	cred.DeactivatedBy = &req.AdminID
	cred.DeactivationReason = &req.Reason

	if err := s.credentialRepo.Update(ctx, cred); err != nil {
		return credential.CredentialResponse{}, err
	}

	return mapToCredentialResponse(cred), nil
}

// Activate implements credential.CredentialService.
func (s *credentialService) Activate(ctx context.Context, employeeID string) (credential.CredentialResponse, error) {
	cred, err := s.credentialRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return credential.CredentialResponse{}, err
	}
	if cred.IsActive {
		return credential.CredentialResponse{}, credential.ErrCredentialAlreadyActive
	}

	cred.IsActive = true
	cred.DeactivatedAt = nil
	cred.DeactivatedBy = nil
	cred.DeactivationReason = nil

	if err := s.credentialRepo.Update(ctx, cred); err != nil {
		return credential.CredentialResponse{}, err
	}

	return mapToCredentialResponse(cred), nil
}

func mapToCredentialResponse(cred credential.Credential) credential.CredentialResponse {
	resp := credential.CredentialResponse{
		ID:                 cred.ID,
		EmployeeID:         cred.EmployeeID,
		Code:               cred.Code,
		IsActive:           cred.IsActive,
		CreatedAt:          cred.CreatedAt.In(civiltime.Zone).Format(time.RFC3339),
		DeactivatedBy:      cred.DeactivatedBy,
		DeactivationReason: cred.DeactivationReason,
	}

	if cred.DeactivatedAt != nil {
		formatted := cred.DeactivatedAt.In(civiltime.Zone).Format(time.RFC3339)
		resp.DeactivatedAt = &formatted
	}

	return resp
}
