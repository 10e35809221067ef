package credential

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
)

type fakeCredentialRepo struct {
	creds map[string]credential.Credential
}

func (f *fakeCredentialRepo) Create(_ context.Context, cred credential.Credential) (credential.Credential, error) {
	f.creds[cred.EmployeeID] = cred
	return cred, nil
}

func (f *fakeCredentialRepo) GetByCode(_ context.Context, code string) (credential.Credential, error) {
	for _, cred := range f.creds {
		if cred.Code == code {
			return cred, nil
		}
	}
	return credential.Credential{}, credential.ErrCredentialNotFound
}

func (f *fakeCredentialRepo) GetByEmployeeID(_ context.Context, employeeID string) (credential.Credential, error) {
	cred, ok := f.creds[employeeID]
	if !ok {
		return credential.Credential{}, credential.ErrCredentialNotFound
	}
	return cred, nil
}

func (f *fakeCredentialRepo) Update(_ context.Context, cred credential.Credential) error {
	f.creds[cred.EmployeeID] = cred
	return nil
}

func newTestService() credential.CredentialService {
	repo := &fakeCredentialRepo{creds: map[string]credential.Credential{
		"e1": {ID: "c1", EmployeeID: "e1", Code: "qr-e1", IsActive: true},
	}}
	return NewCredentialService(repo)
}

func TestCredentialLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// deactivation records the reason, admin and timestamp
	resp, err := svc.Deactivate(ctx, credential.DeactivateCredentialRequest{
		EmployeeID: "e1",
		AdminID:    "admin-1",
		Reason:     "badge reported lost",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	require.NotNil(t, resp.DeactivatedBy)
	assert.Equal(t, "admin-1", *resp.DeactivatedBy)
	require.NotNil(t, resp.DeactivationReason)
	assert.Equal(t, "badge reported lost", *resp.DeactivationReason)
	assert.NotNil(t, resp.DeactivatedAt)

	// deactivating twice is a conflict
	_, err = svc.Deactivate(ctx, credential.DeactivateCredentialRequest{
		EmployeeID: "e1",
		AdminID:    "admin-1",
		Reason:     "again",
	})
	assert.ErrorIs(t, err, credential.ErrCredentialAlreadyInactive)

	// reactivation clears every piece of deactivation metadata
	resp, err = svc.Activate(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.DeactivatedAt)
	assert.Nil(t, resp.DeactivatedBy)
	assert.Nil(t, resp.DeactivationReason)

	_, err = svc.Activate(ctx, "e1")
	assert.ErrorIs(t, err, credential.ErrCredentialAlreadyActive)
}

func TestDeactivateRequiresReason(t *testing.T) {
	svc := newTestService()

	_, err := svc.Deactivate(context.Background(), credential.DeactivateCredentialRequest{
		EmployeeID: "e1",
		AdminID:    "admin-1",
	})
	require.Error(t, err)
}

func TestCredentialNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, credential.ErrCredentialNotFound)
}
