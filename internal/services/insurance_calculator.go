package services

import (
	"log/slog"
	"strings"

	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/models"
)

// InsuranceCalculator derives premiums and late fines from the configured
// tariff. It is pure given its inputs: the caller supplies the current year,
// so there is no wall-clock dependency.
type InsuranceCalculator struct {
	tariff config.TariffConfig
}

func NewInsuranceCalculator(tariff config.TariffConfig) *InsuranceCalculator {
	return &InsuranceCalculator{tariff: tariff}
}

// CalculatePremium computes the annual premium from the vehicle's value, age
// and fuel type, floored at the tariff's minimum premium.
func (c *InsuranceCalculator) CalculatePremium(vehicle *models.Vehicle, currentYear int) float64 {
	baseRate := vehicle.OriginalValue * c.tariff.BaseRatePercentage
	ageFactor := c.ageFactor(vehicle.ManufactureYear, currentYear)
	fuelAdjustment := c.fuelTypeAdjustment(vehicle.FuelType)

	premium := baseRate*ageFactor + fuelAdjustment
	if premium < c.tariff.MinimumPremium {
		premium = c.tariff.MinimumPremium
	}

	slog.Debug("Calculated premium",
		"vehicle_id", vehicle.ID,
		"base_rate", baseRate,
		"age_factor", ageFactor,
		"fuel_adjustment", fuelAdjustment,
		"premium", premium)

	return premium
}

func (c *InsuranceCalculator) ageFactor(manufactureYear, currentYear int) float64 {
	age := currentYear - manufactureYear
	if age < 0 {
		age = 0
	}
	factor := 1.0 - float64(age)*c.tariff.AgeDepreciationRate
	if factor < c.tariff.MinimumAgeFactor {
		factor = c.tariff.MinimumAgeFactor
	}
	return factor
}

func (c *InsuranceCalculator) fuelTypeAdjustment(fuelType string) float64 {
	switch strings.ToLower(strings.TrimSpace(fuelType)) {
	case "electric":
		return c.tariff.ElectricAdjustment
	case "diesel":
		return c.tariff.DieselAdjustment
	default:
		return 0
	}
}

// CalculateLateFine returns the fine accrued for the given number of overdue
// days. Days inside the grace period accrue nothing; the fine is strictly
// per day beyond it.
func (c *InsuranceCalculator) CalculateLateFine(daysOverdue int64) float64 {
	if daysOverdue <= int64(c.tariff.GracePeriodDays) {
		return 0
	}
	fineDays := daysOverdue - int64(c.tariff.GracePeriodDays)
	return float64(fineDays) * c.tariff.FinePerDay
}

// GracePeriodDays exposes the configured grace period to the evaluator.
func (c *InsuranceCalculator) GracePeriodDays() int {
	return c.tariff.GracePeriodDays
}
