package services

import (
	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/models"
)

// StatusEvaluator classifies a policy's temporal state against a reference
// date. It is the single source of truth for policy status; the status
// cached on the entity is only the last evaluation's result.
type StatusEvaluator struct {
	calculator *InsuranceCalculator
}

func NewStatusEvaluator(calculator *InsuranceCalculator) *StatusEvaluator {
	return &StatusEvaluator{calculator: calculator}
}

// Evaluate partitions the reference date into exactly one of Active,
// DueGrace or Expired relative to the renewal due date. A diff of zero is
// still Active; an overdue count equal to the grace period is still DueGrace.
func (e *StatusEvaluator) Evaluate(policy models.Policy, reference calendar.Date) models.StatusResult {
	diff := calendar.DaysBetween(policy.RenewalDueDate, reference)

	if diff >= 0 {
		return models.StatusResult{
			Status:    models.PolicyActive,
			DaysToDue: diff,
			Fine:      0,
			Expired:   false,
		}
	}

	overdueDays := -diff
	if overdueDays <= int64(e.calculator.GracePeriodDays()) {
		return models.StatusResult{
			Status:    models.PolicyDueGrace,
			DaysToDue: diff,
			Fine:      0,
			Expired:   false,
		}
	}

	return models.StatusResult{
		Status:    models.PolicyExpired,
		DaysToDue: diff,
		Fine:      e.calculator.CalculateLateFine(overdueDays),
		Expired:   true,
	}
}
