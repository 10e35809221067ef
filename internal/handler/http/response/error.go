package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/attendance"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/auth"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/payroll"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidPin):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Credential domain errors
	case errors.Is(err, credential.ErrCredentialNotFound):
		NotFound(w, "Credential not found or inactive")
	case errors.Is(err, credential.ErrCredentialAlreadyActive):
		Conflict(w, "Credential is already active")
	case errors.Is(err, credential.ErrCredentialAlreadyInactive):
		Conflict(w, "Credential is already inactive")

	// Attendance domain errors; the duplicate messages carry the time of
	// the existing scan, so pass them through
	case errors.Is(err, attendance.ErrDuplicateTimeIn),
		errors.Is(err, attendance.ErrDuplicateTimeOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrMissingTimeIn):
		Conflict(w, "No time-in recorded today")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotConfigured):
		NotFound(w, "Time policy not configured")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")

	// Report domain errors
	case errors.Is(err, report.ErrNoEmployeesMatched):
		NotFound(w, "No employees matched the report filter")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
