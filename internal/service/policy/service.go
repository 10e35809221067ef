package policy

import (
	"context"
	"time"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
)

type timePolicyService struct {
	policyRepo policy.TimePolicyRepository
}

func NewTimePolicyService(policyRepo policy.TimePolicyRepository) policy.TimePolicyService {
	return &timePolicyService{policyRepo: policyRepo}
}

// Save implements policy.TimePolicyService. The new values take effect
// immediately for future scans; events already classified keep the labels
// they were written with.
func (s *timePolicyService) Save(ctx context.Context, req policy.SaveTimePolicyRequest) (policy.TimePolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.TimePolicyResponse{}, err
	}

	timeInStart, _ := civiltime.ParseClock(req.TimeInStart)
	timeInEnd, _ := civiltime.ParseClock(req.TimeInEnd)
	officialTimeOut, _ := civiltime.ParseClock(req.OfficialTimeOut)

	pol := policy.TimePolicy{
		TimeInStart:        timeInStart,
		TimeInEnd:          timeInEnd,
		GracePeriodMinutes: req.GracePeriodMinutes,
		OfficialTimeOut:    officialTimeOut,
		RequiredHours:      req.RequiredHours,
	}

	saved, err := s.policyRepo.Upsert(ctx, pol)
	if err != nil {
		return policy.TimePolicyResponse{}, err
	}

	return mapToPolicyResponse(saved), nil
}

// Get implements policy.TimePolicyService.
func (s *timePolicyService) Get(ctx context.Context) (policy.TimePolicyResponse, error) {
	pol, err := s.policyRepo.Get(ctx)
	if err != nil {
		return policy.TimePolicyResponse{}, err
	}

	return mapToPolicyResponse(pol), nil
}

func mapToPolicyResponse(pol policy.TimePolicy) policy.TimePolicyResponse {
	return policy.TimePolicyResponse{
		TimeInStart:        civiltime.FormatClock(pol.TimeInStart),
		TimeInEnd:          civiltime.FormatClock(pol.TimeInEnd),
		GracePeriodMinutes: pol.GracePeriodMinutes,
		OfficialTimeOut:    civiltime.FormatClock(pol.OfficialTimeOut),
		RequiredHours:      pol.RequiredHours,
		UpdatedAt:          pol.UpdatedAt.In(civiltime.Zone).Format(time.RFC3339),
	}
}
