package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
)

type fakeEventRepo struct {
	events map[string][]attendance.TimeEvent

	scopedCalls int
	rangeCalls  int
}

func (f *fakeEventRepo) Create(_ context.Context, ev attendance.TimeEvent) (attendance.TimeEvent, error) {
	f.events[ev.EmployeeID] = append(f.events[ev.EmployeeID], ev)
	return ev, nil
}

func (f *fakeEventRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]attendance.TimeEvent, error) {
	var out []attendance.TimeEvent
	for _, ev := range f.events[employeeID] {
		if ev.Date.Equal(date) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, _, _ time.Time) ([]attendance.TimeEvent, error) {
	f.scopedCalls++
	return f.events[employeeID], nil
}

func (f *fakeEventRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.TimeEvent, error) {
	var out []attendance.TimeEvent
	for _, evs := range f.events {
		for _, ev := range evs {
			if ev.Date.Equal(date) {
				out = append(out, ev)
			}
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByRange(_ context.Context, _, _ time.Time) ([]attendance.TimeEvent, error) {
	f.rangeCalls++
	var out []attendance.TimeEvent
	for _, evs := range f.events {
		out = append(out, evs...)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	emp := f.employees[id]
	emp.IsActive = active
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if activeOnly && !emp.IsActive {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func newTestService() (report.ReportService, *fakeEventRepo) {
	eventRepo := &fakeEventRepo{events: map[string][]attendance.TimeEvent{
		"e1": {
			timeInEvent("2025-01-01", attendance.StatusOnTime, 0),
			timeOutEvent("2025-01-01", attendance.StatusCompleted, 0),
			timeInEvent("2025-01-02", attendance.StatusLate, 10),
		},
		"e2": {
			timeInEvent("2025-01-02", attendance.StatusOnTime, 0),
		},
	}}
	for id, evs := range eventRepo.events {
		for i := range evs {
			evs[i].EmployeeID = id
		}
	}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"e1": {ID: "e1", FirstName: "Ana", LastName: "Reyes", IsActive: true},
		"e2": {ID: "e2", FirstName: "Ben", LastName: "Cruz", IsActive: true},
		"e3": {ID: "e3", FirstName: "Cus", LastName: "Dizon", IsActive: false},
	}}
	return NewReportService(eventRepo, employeeRepo), eventRepo
}

func reportRequest(employeeID *string) report.AttendanceReportRequest {
	return report.AttendanceReportRequest{
		DateFrom:   "2025-01-01",
		DateTo:     "2025-01-07",
		EmployeeID: employeeID,
	}
}

func TestGenerateAllEmployees(t *testing.T) {
	svc, eventRepo := newTestService()

	rep, err := svc.Generate(context.Background(), reportRequest(nil))
	require.NoError(t, err)

	// active employees only, one bulk range query
	assert.Len(t, rep.PerEmployee, 2)
	assert.Equal(t, 1, eventRepo.rangeCalls)
	assert.Equal(t, 0, eventRepo.scopedCalls)
	assert.Equal(t, 7, rep.Summary.TotalDays)
	assert.Equal(t, 2, rep.Summary.TotalEmployees)
}

func TestGenerateFilteredEmployee(t *testing.T) {
	svc, eventRepo := newTestService()

	id := "e1"
	rep, err := svc.Generate(context.Background(), reportRequest(&id))
	require.NoError(t, err)

	// the filtered report fetches only that employee's events
	require.Len(t, rep.PerEmployee, 1)
	assert.Equal(t, 1, eventRepo.scopedCalls)
	assert.Equal(t, 0, eventRepo.rangeCalls)

	row := rep.PerEmployee[0]
	assert.Equal(t, "e1", row.EmployeeID)
	assert.Equal(t, "Ana Reyes", row.EmployeeName)
	assert.Equal(t, 2, row.DaysWorked)
	assert.Equal(t, 1, row.LateCount)
}

func TestGenerateDeactivatedFilterNotFound(t *testing.T) {
	svc, _ := newTestService()

	id := "e3"
	_, err := svc.Generate(context.Background(), reportRequest(&id))
	assert.ErrorIs(t, err, report.ErrNoEmployeesMatched)
}
