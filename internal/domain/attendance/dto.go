package attendance

import (
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"
)

type RecordScanRequest struct {
	Code   string `json:"code"`
	Action string `json:"action"`
}

func (r *RecordScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if !validator.IsInSlice(r.Action, []string{string(ActionTimeIn), string(ActionTimeOut)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be time_in or time_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ScanResponse is the confirmation feedback shown after an accepted scan.
type ScanResponse struct {
	EmployeeName string `json:"employee_name"`
	Action       string `json:"action"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status,omitempty"`
}

type TimeEventResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	Action           string  `json:"action"`
	Time             string  `json:"time"`
	Status           string  `json:"status,omitempty"`
	LateMinutes      int     `json:"late_minutes"`
	OvertimeMinutes  int     `json:"overtime_minutes"`
	UndertimeMinutes int     `json:"undertime_minutes"`
}
