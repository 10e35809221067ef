package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

type attendanceService struct {
	eventRepo      attendance.TimeEventRepository
	credentialRepo credential.CredentialRepository
	employeeRepo   employee.EmployeeRepository
	policyRepo     policy.TimePolicyRepository
}

func NewAttendanceService(
	eventRepo attendance.TimeEventRepository,
	credentialRepo credential.CredentialRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo policy.TimePolicyRepository,
) attendance.AttendanceService {
	return &attendanceService{
		eventRepo:      eventRepo,
		credentialRepo: credentialRepo,
		employeeRepo:   employeeRepo,
		policyRepo:     policyRepo,
	}
}

// RecordScan implements attendance.AttendanceService.
func (s *attendanceService) RecordScan(ctx context.Context, req attendance.RecordScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	cred, err := s.credentialRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return attendance.ScanResponse{}, err
	}
	if !cred.IsActive {
		return attendance.ScanResponse{}, credential.ErrCredentialNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, cred.EmployeeID)
	if err != nil {
		return attendance.ScanResponse{}, err
	}
	// a deactivated employee's code must not resolve, same as a revoked one
	if !emp.IsActive {
		return attendance.ScanResponse{}, credential.ErrCredentialNotFound
	}

	now := civiltime.Now()
	today := civiltime.DateOf(now)
	minute := civiltime.MinuteOfDay(now)
	action := attendance.Action(req.Action)

	events, err := s.eventRepo.ListByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	var timeIn *attendance.TimeEvent
	for i := range events {
		ev := &events[i]
		switch ev.Action {
		case attendance.ActionTimeIn:
			if action == attendance.ActionTimeIn {
				return attendance.ScanResponse{}, fmt.Errorf("%w (recorded at %s)",
					attendance.ErrDuplicateTimeIn, civiltime.FormatClock(ev.MinuteOfDay))
			}
			timeIn = ev
		case attendance.ActionTimeOut:
			if action == attendance.ActionTimeOut {
				return attendance.ScanResponse{}, fmt.Errorf("%w (recorded at %s)",
					attendance.ErrDuplicateTimeOut, civiltime.FormatClock(ev.MinuteOfDay))
			}
		}
	}

	if action == attendance.ActionTimeOut && timeIn == nil {
		return attendance.ScanResponse{}, attendance.ErrMissingTimeIn
	}

	pol, err := s.activePolicy(ctx)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	ev := attendance.TimeEvent{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		Date:        today,
		Action:      action,
		MinuteOfDay: minute,
	}

	if action == attendance.ActionTimeIn {
		ev.Status, ev.LateMinutes = classifyTimeIn(pol, minute)
	} else {
		ev.Status, ev.OvertimeMinutes, ev.UndertimeMinutes = classifyTimeOut(pol, timeIn.MinuteOfDay, minute)
	}

	if _, err := s.eventRepo.Create(ctx, ev); err != nil {
		return attendance.ScanResponse{}, err
	}

	return attendance.ScanResponse{
		EmployeeName: emp.FullName(),
		Action:       string(action),
		Date:         today.Format(civiltime.DateLayout),
		Time:         civiltime.FormatClock(minute),
		Status:       string(ev.Status),
	}, nil
}

// ListDay implements attendance.AttendanceService.
func (s *attendanceService) ListDay(ctx context.Context, date string) ([]attendance.TimeEventResponse, error) {
	day := civiltime.Today()
	if date != "" {
		parsed, err := civiltime.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		day = parsed
	}

	events, err := s.eventRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.TimeEventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapToEventResponse(ev))
	}

	return responses, nil
}

// activePolicy fetches the configured policy, flattening "not configured"
// into a nil policy so the classifier can apply its permissive defaults.
func (s *attendanceService) activePolicy(ctx context.Context) (*policy.TimePolicy, error) {
	pol, err := s.policyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyNotConfigured) {
			return nil, nil
		}
		return nil, err
	}
	return &pol, nil
}

func mapToEventResponse(ev attendance.TimeEvent) attendance.TimeEventResponse {
	return attendance.TimeEventResponse{
		ID:               ev.ID,
		EmployeeID:       ev.EmployeeID,
		EmployeeName:     ev.EmployeeName,
		Date:             ev.Date.Format(civiltime.DateLayout),
		Action:           string(ev.Action),
		Time:             civiltime.FormatClock(ev.MinuteOfDay),
		Status:           string(ev.Status),
		LateMinutes:      ev.LateMinutes,
		OvertimeMinutes:  ev.OvertimeMinutes,
		UndertimeMinutes: ev.UndertimeMinutes,
	}
}
