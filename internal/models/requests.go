package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"vehicle-policy-service/internal/calendar"
)

var validate = validator.New()

// DateInput carries raw date components from a client. Range validation
// matches the input-layer contract (month 1-12, day 1-31, year after 1900).
type DateInput struct {
	Day   int `json:"day" validate:"required,min=1,max=31"`
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,gt=1900"`
}

func (d DateInput) ToDate() (calendar.Date, error) {
	return calendar.NewDate(d.Day, d.Month, d.Year)
}

type RegisterVehicleRequest struct {
	Make             string    `json:"make" validate:"required,min=1,max=100"`
	Model            string    `json:"model" validate:"required,min=1,max=100"`
	ManufactureYear  int       `json:"manufacture_year" validate:"required,gt=1900"`
	OriginalValue    float64   `json:"original_value" validate:"required,gt=0"`
	FuelType         string    `json:"fuel_type" validate:"required,min=1,max=50"`
	RegistrationDate DateInput `json:"registration_date"`
}

func (r RegisterVehicleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if _, err := r.RegistrationDate.ToDate(); err != nil {
		return fmt.Errorf("registration_date: %w", err)
	}
	return nil
}

type QuoteRenewalRequest struct {
	ReferenceDate DateInput `json:"reference_date"`
	// MethodSelector is the 1-6 menu selection.
	MethodSelector int    `json:"method" validate:"required"`
	PromoCode      string `json:"promo_code,omitempty"`
}

func (r QuoteRenewalRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if _, err := r.ReferenceDate.ToDate(); err != nil {
		return fmt.Errorf("reference_date: %w", err)
	}
	return nil
}

type ConfirmRenewalRequest struct {
	// Confirm proceeds only on "y" or "Y"; anything else cancels.
	Confirm string `json:"confirm"`
}

// Affirmative reports whether the confirmation input means "proceed".
func (r ConfirmRenewalRequest) Affirmative() bool {
	return strings.TrimSpace(r.Confirm) == "y" || strings.TrimSpace(r.Confirm) == "Y"
}
