package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
)

type fakeEventRepo struct {
	events []attendance.TimeEvent
}

func (f *fakeEventRepo) Create(_ context.Context, ev attendance.TimeEvent) (attendance.TimeEvent, error) {
	for _, existing := range f.events {
		if existing.EmployeeID == ev.EmployeeID && existing.Date.Equal(ev.Date) && existing.Action == ev.Action {
			if ev.Action == attendance.ActionTimeIn {
				return attendance.TimeEvent{}, attendance.ErrDuplicateTimeIn
			}
			return attendance.TimeEvent{}, attendance.ErrDuplicateTimeOut
		}
	}
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeEventRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]attendance.TimeEvent, error) {
	var out []attendance.TimeEvent
	for _, ev := range f.events {
		if ev.EmployeeID == employeeID && ev.Date.Equal(date) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.TimeEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.TimeEvent, error) {
	var out []attendance.TimeEvent
	for _, ev := range f.events {
		if ev.Date.Equal(date) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByRange(_ context.Context, from, to time.Time) ([]attendance.TimeEvent, error) {
	return f.events, nil
}

type fakeCredentialRepo struct {
	byCode map[string]credential.Credential
}

func (f *fakeCredentialRepo) Create(_ context.Context, cred credential.Credential) (credential.Credential, error) {
	f.byCode[cred.Code] = cred
	return cred, nil
}

func (f *fakeCredentialRepo) GetByCode(_ context.Context, code string) (credential.Credential, error) {
	cred, ok := f.byCode[code]
	if !ok {
		return credential.Credential{}, credential.ErrCredentialNotFound
	}
	return cred, nil
}

func (f *fakeCredentialRepo) GetByEmployeeID(_ context.Context, employeeID string) (credential.Credential, error) {
	for _, cred := range f.byCode {
		if cred.EmployeeID == employeeID {
			return cred, nil
		}
	}
	return credential.Credential{}, credential.ErrCredentialNotFound
}

func (f *fakeCredentialRepo) Update(_ context.Context, cred credential.Credential) error {
	f.byCode[cred.Code] = cred
	return nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.byID[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	emp := f.byID[id]
	emp.IsActive = active
	f.byID[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.byID {
		if activeOnly && !emp.IsActive {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

type fakePolicyRepo struct {
	pol *policy.TimePolicy
}

func (f *fakePolicyRepo) Get(_ context.Context) (policy.TimePolicy, error) {
	if f.pol == nil {
		return policy.TimePolicy{}, policy.ErrPolicyNotConfigured
	}
	return *f.pol, nil
}

func (f *fakePolicyRepo) Upsert(_ context.Context, pol policy.TimePolicy) (policy.TimePolicy, error) {
	f.pol = &pol
	return pol, nil
}

func newTestService(pol *policy.TimePolicy) (attendance.AttendanceService, *fakeEventRepo) {
	events := &fakeEventRepo{}
	creds := &fakeCredentialRepo{byCode: map[string]credential.Credential{
		"active-code":  {ID: "c1", EmployeeID: "e1", Code: "active-code", IsActive: true},
		"revoked-code": {ID: "c2", EmployeeID: "e2", Code: "revoked-code", IsActive: false},
		"former-code":  {ID: "c3", EmployeeID: "e3", Code: "former-code", IsActive: true},
	}}
	emps := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"e1": {ID: "e1", FirstName: "Ana", LastName: "Reyes", HourlyRate: decimal.NewFromInt(100), IsActive: true},
		"e2": {ID: "e2", FirstName: "Ben", LastName: "Cruz", HourlyRate: decimal.NewFromInt(100), IsActive: true},
		"e3": {ID: "e3", FirstName: "Cai", LastName: "Lim", HourlyRate: decimal.NewFromInt(100), IsActive: false},
	}}

	svc := NewAttendanceService(events, creds, emps, &fakePolicyRepo{pol: pol})
	return svc, events
}

func TestRecordScanFlow(t *testing.T) {
	ctx := context.Background()
	svc, events := newTestService(nil)

	resp, err := svc.RecordScan(ctx, attendance.RecordScanRequest{Code: "active-code", Action: "time_in"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", resp.EmployeeName)
	assert.Equal(t, "time_in", resp.Action)
	// no policy configured, the scan is accepted as on time
	assert.Equal(t, string(attendance.StatusOnTime), resp.Status)

	// second time-in the same day is rejected
	_, err = svc.RecordScan(ctx, attendance.RecordScanRequest{Code: "active-code", Action: "time_in"})
	assert.ErrorIs(t, err, attendance.ErrDuplicateTimeIn)

	resp, err = svc.RecordScan(ctx, attendance.RecordScanRequest{Code: "active-code", Action: "time_out"})
	require.NoError(t, err)
	// time-out without a policy carries no status
	assert.Empty(t, resp.Status)

	_, err = svc.RecordScan(ctx, attendance.RecordScanRequest{Code: "active-code", Action: "time_out"})
	assert.ErrorIs(t, err, attendance.ErrDuplicateTimeOut)

	require.Len(t, events.events, 2)
}

func TestRecordScanTimeOutWithoutTimeIn(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.RecordScan(context.Background(), attendance.RecordScanRequest{Code: "active-code", Action: "time_out"})
	assert.ErrorIs(t, err, attendance.ErrMissingTimeIn)
}

func TestRecordScanRejectsUnusableCodes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	tests := []struct {
		name string
		code string
	}{
		{"unknown code", "no-such-code"},
		{"revoked credential", "revoked-code"},
		{"deactivated employee", "former-code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordScan(ctx, attendance.RecordScanRequest{Code: tt.code, Action: "time_in"})
			assert.ErrorIs(t, err, credential.ErrCredentialNotFound)
		})
	}
}

func TestRecordScanValidation(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.RecordScan(context.Background(), attendance.RecordScanRequest{Code: "", Action: "lunch"})
	require.Error(t, err)
}
