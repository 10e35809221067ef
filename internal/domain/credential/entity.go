package credential

import "time"

// Credential is an employee's scannable QR identity. At most one exists per
// employee; it is issued alongside the employee record and thereafter only
// resolved on scans or moved through the activate/deactivate lifecycle.
type Credential struct {
	ID                 string
	EmployeeID         string
	Code               string
	IsActive           bool
	CreatedAt          time.Time
	DeactivatedAt      *time.Time
	DeactivatedBy      *string
	DeactivationReason *string
}
