package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/models"
)

func newTestEvaluator() *StatusEvaluator {
	return NewStatusEvaluator(NewInsuranceCalculator(config.DefaultTariff()))
}

func policyDueOn(day, month, year int) models.Policy {
	due := calendar.Date{Day: day, Month: month, Year: year}
	return models.Policy{
		RegistrationDate: calendar.Date{Day: day, Month: month, Year: year - 1},
		RenewalDueDate:   due,
		Status:           models.PolicyNew,
	}
}

func TestEvaluate_ActiveBeforeDueDate(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	result := evaluator.Evaluate(policy, calendar.Date{Day: 1, Month: 5, Year: 2024})

	assert.Equal(t, models.PolicyActive, result.Status)
	assert.Equal(t, int64(31), result.DaysToDue)
	assert.Equal(t, 0.0, result.Fine)
	assert.False(t, result.Expired)
}

func TestEvaluate_ActiveOnDueDate(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	result := evaluator.Evaluate(policy, calendar.Date{Day: 1, Month: 6, Year: 2024})

	assert.Equal(t, models.PolicyActive, result.Status, "diff of zero is still Active")
	assert.Equal(t, int64(0), result.DaysToDue)
	assert.False(t, result.Expired)
}

func TestEvaluate_DueGraceInsideGracePeriod(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	result := evaluator.Evaluate(policy, calendar.Date{Day: 15, Month: 6, Year: 2024})

	assert.Equal(t, models.PolicyDueGrace, result.Status)
	assert.Equal(t, int64(-14), result.DaysToDue)
	assert.Equal(t, 0.0, result.Fine, "no fine accrues inside the grace period")
	assert.False(t, result.Expired)
}

func TestEvaluate_GraceBoundaryIsDueGrace(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	// June has 30 days, so 01/07 is exactly 30 days overdue.
	result := evaluator.Evaluate(policy, calendar.Date{Day: 1, Month: 7, Year: 2024})

	assert.Equal(t, models.PolicyDueGrace, result.Status, "exactly 30 days overdue is still DueGrace, not Expired")
	assert.Equal(t, int64(-30), result.DaysToDue)
	assert.Equal(t, 0.0, result.Fine)
	assert.False(t, result.Expired)
}

func TestEvaluate_ExpiredBeyondGracePeriod(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	result := evaluator.Evaluate(policy, calendar.Date{Day: 2, Month: 7, Year: 2024})

	assert.Equal(t, models.PolicyExpired, result.Status)
	assert.Equal(t, int64(-31), result.DaysToDue)
	assert.Equal(t, 50.0, result.Fine, "one fined day beyond the grace period")
	assert.True(t, result.Expired)
}

func TestEvaluate_FineGrowsLinearly(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	// 31/07 is 60 days after the 01/06 due date.
	result := evaluator.Evaluate(policy, calendar.Date{Day: 31, Month: 7, Year: 2024})

	assert.Equal(t, models.PolicyExpired, result.Status)
	assert.Equal(t, int64(-60), result.DaysToDue)
	assert.Equal(t, 1500.0, result.Fine)
}

func TestEvaluate_PartitionsEveryReferenceDate(t *testing.T) {
	evaluator := newTestEvaluator()
	policy := policyDueOn(1, 6, 2024)

	references := []calendar.Date{
		{Day: 1, Month: 1, Year: 2024},
		{Day: 1, Month: 6, Year: 2024},
		{Day: 20, Month: 6, Year: 2024},
		{Day: 1, Month: 7, Year: 2024},
		{Day: 1, Month: 9, Year: 2025},
	}
	for _, ref := range references {
		result := evaluator.Evaluate(policy, ref)
		switch result.Status {
		case models.PolicyActive, models.PolicyDueGrace, models.PolicyExpired:
		default:
			t.Fatalf("reference %v produced unexpected status %q", ref, result.Status)
		}
		assert.Equal(t, result.Status == models.PolicyExpired, result.Expired,
			"expired flag must match the Expired classification for %v", ref)
	}
}
