package models

import (
	"time"

	"github.com/google/uuid"

	"vehicle-policy-service/internal/calendar"
)

// ============================================================================
// VEHICLE & POLICY
// ============================================================================

// Policy tracks the insurance coverage window for a vehicle. The cached
// Status reflects the most recent evaluation and must not be trusted without
// re-running the status evaluator against a reference date.
type Policy struct {
	RegistrationDate calendar.Date `json:"registration_date"`
	RenewalDueDate   calendar.Date `json:"renewal_due_date"`
	Status           PolicyStatus  `json:"status"`
}

// NewPolicy creates a policy registered on the given date. The first renewal
// falls due exactly one year after registration.
func NewPolicy(registrationDate calendar.Date) Policy {
	return Policy{
		RegistrationDate: registrationDate,
		RenewalDueDate:   calendar.AddOneYear(registrationDate),
		Status:           PolicyNew,
	}
}

type Vehicle struct {
	ID              uuid.UUID `json:"id"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	ManufactureYear int       `json:"manufacture_year"`
	OriginalValue   float64   `json:"original_value"`
	FuelType        string    `json:"fuel_type"`
	Policy          Policy    `json:"policy"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StatusResult is the outcome of evaluating a policy against a reference
// date. It is computed on demand and never stored.
type StatusResult struct {
	Status PolicyStatus `json:"status"`
	// DaysToDue is positive when the due date is still ahead of the
	// reference date, negative when the policy is overdue.
	DaysToDue int64   `json:"days_to_due"`
	Fine      float64 `json:"fine"`
	Expired   bool    `json:"expired"`
}
