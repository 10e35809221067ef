package policy

import (
	"github.com/shopspring/decimal"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"
)

type SaveTimePolicyRequest struct {
	TimeInStart        string          `json:"time_in_start"`
	TimeInEnd          string          `json:"time_in_end"`
	GracePeriodMinutes int             `json:"grace_period_minutes"`
	OfficialTimeOut    string          `json:"official_time_out"`
	RequiredHours      decimal.Decimal `json:"required_hours"`
}

func (r *SaveTimePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TimeInStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in_start",
			Message: "time_in_start is required",
		})
	} else if !validator.IsValidClockTime(r.TimeInStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in_start",
			Message: "time_in_start must be a valid HH:MM time",
		})
	}

	if validator.IsEmpty(r.TimeInEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in_end",
			Message: "time_in_end is required",
		})
	} else if !validator.IsValidClockTime(r.TimeInEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in_end",
			Message: "time_in_end must be a valid HH:MM time",
		})
	}

	startMinute, startErr := civiltime.ParseClock(r.TimeInStart)
	endMinute, endErr := civiltime.ParseClock(r.TimeInEnd)
	if startErr == nil && endErr == nil && startMinute >= endMinute {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in_end",
			Message: "time_in_end must be after time_in_start",
		})
	}

	if r.GracePeriodMinutes < 0 || r.GracePeriodMinutes > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must be between 0 and 60",
		})
	}

	if validator.IsEmpty(r.OfficialTimeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "official_time_out",
			Message: "official_time_out is required",
		})
	} else if !validator.IsValidClockTime(r.OfficialTimeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "official_time_out",
			Message: "official_time_out must be a valid HH:MM time",
		})
	}

	if !r.RequiredHours.IsPositive() || r.RequiredHours.GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{
			Field:   "required_hours",
			Message: "required_hours must be greater than 0 and at most 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimePolicyResponse struct {
	TimeInStart        string          `json:"time_in_start"`
	TimeInEnd          string          `json:"time_in_end"`
	GracePeriodMinutes int             `json:"grace_period_minutes"`
	OfficialTimeOut    string          `json:"official_time_out"`
	RequiredHours      decimal.Decimal `json:"required_hours"`
	UpdatedAt          string          `json:"updated_at"`
}
