package credential

import "github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"

type DeactivateCredentialRequest struct {
	EmployeeID string `json:"-"`
	AdminID    string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *DeactivateCredentialRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CredentialResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	Code               string  `json:"code"`
	IsActive           bool    `json:"is_active"`
	CreatedAt          string  `json:"created_at"`
	DeactivatedAt      *string `json:"deactivated_at,omitempty"`
	DeactivatedBy      *string `json:"deactivated_by,omitempty"`
	DeactivationReason *string `json:"deactivation_reason,omitempty"`
}
