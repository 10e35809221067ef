package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	HourlyRate decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName is the display name used in scan confirmations and reports.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
