package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/models"
	"vehicle-policy-service/internal/repository"
)

// RenewalOrchestrator drives the renewal workflow: re-evaluate status, quote
// the bill for an expired policy, then settle the quotation exactly once.
// All mutation of a vehicle's due date happens under its per-vehicle lock.
type RenewalOrchestrator struct {
	vehicleRepo   *repository.VehicleRepository
	quotationRepo *repository.QuotationRepository
	calculator    *InsuranceCalculator
	evaluator     *StatusEvaluator
	processor     *PaymentProcessor
	receipts      *ReceiptIssuer
	clock         Clock
}

func NewRenewalOrchestrator(
	vehicleRepo *repository.VehicleRepository,
	quotationRepo *repository.QuotationRepository,
	calculator *InsuranceCalculator,
	evaluator *StatusEvaluator,
	processor *PaymentProcessor,
	receipts *ReceiptIssuer,
	clock Clock,
) *RenewalOrchestrator {
	return &RenewalOrchestrator{
		vehicleRepo:   vehicleRepo,
		quotationRepo: quotationRepo,
		calculator:    calculator,
		evaluator:     evaluator,
		processor:     processor,
		receipts:      receipts,
		clock:         clock,
	}
}

// RenewalOutcome is the result of one step of the renewal workflow.
type RenewalOutcome struct {
	State     models.RenewalState      `json:"state"`
	Message   string                   `json:"message"`
	Status    *models.StatusResult     `json:"status,omitempty"`
	Quotation *models.PendingQuotation `json:"quotation,omitempty"`
	Receipt   *models.Receipt          `json:"receipt,omitempty"`
}

// PrepareQuotation re-evaluates the policy against the reference date and,
// only when it is expired, quotes a bill and stores it for confirmation.
// A policy that is not expired yields a Blocked outcome with no mutation
// beyond the cached status.
func (o *RenewalOrchestrator) PrepareQuotation(
	vehicleID uuid.UUID,
	reference calendar.Date,
	method models.PaymentMethod,
	promoCode string,
) (*RenewalOutcome, error) {
	o.vehicleRepo.LockVehicle(vehicleID)
	defer o.vehicleRepo.UnlockVehicle(vehicleID)

	vehicle, err := o.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving vehicle: %w", err)
	}

	status := o.evaluator.Evaluate(vehicle.Policy, reference)
	vehicle.Policy.Status = status.Status
	if err := o.vehicleRepo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("failed to cache policy status: %w", err)
	}

	if !status.Expired {
		slog.Info("Renewal blocked: policy is not expired",
			"vehicle_id", vehicleID,
			"status", status.Status,
			"days_to_due", status.DaysToDue)
		return &RenewalOutcome{
			State:   models.RenewalBlocked,
			Message: "policy is not expired, renewal is disabled",
			Status:  &status,
		}, nil
	}

	basePremium := o.calculator.CalculatePremium(vehicle, reference.Year)
	bill, err := o.processor.Quote(method, basePremium, status.Fine, promoCode)
	if err != nil {
		slog.Warn("Renewal rejected: payment selection invalid",
			"vehicle_id", vehicleID,
			"method", method)
		return nil, err
	}

	quotation := models.PendingQuotation{
		ID:            uuid.New(),
		VehicleID:     vehicleID,
		Method:        method,
		PromoCode:     promoCode,
		Bill:          bill,
		ReferenceDate: reference,
		QuotedAt:      o.clock.Now(),
	}
	o.quotationRepo.Save(quotation)

	slog.Info("Quoted renewal",
		"vehicle_id", vehicleID,
		"quotation_id", quotation.ID,
		"method", method,
		"fine", status.Fine,
		"total", bill.Total)

	return &RenewalOutcome{
		State:     models.RenewalQuoting,
		Message:   "bill quoted, awaiting confirmation",
		Status:    &status,
		Quotation: &quotation,
	}, nil
}

// ConfirmRenewal settles a pending quotation. The quotation is consumed on
// the first call whatever the answer, so a replayed confirmation cannot
// advance the due date twice. Declining leaves the policy untouched.
func (o *RenewalOrchestrator) ConfirmRenewal(quotationID uuid.UUID, confirmed bool) (*RenewalOutcome, error) {
	quotation, err := o.quotationRepo.Take(quotationID)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		slog.Info("Renewal cancelled by payer",
			"vehicle_id", quotation.VehicleID,
			"quotation_id", quotationID)
		return &RenewalOutcome{
			State:   models.RenewalCancelled,
			Message: "payment cancelled, renewal not completed",
		}, nil
	}

	o.vehicleRepo.LockVehicle(quotation.VehicleID)
	defer o.vehicleRepo.UnlockVehicle(quotation.VehicleID)

	vehicle, err := o.vehicleRepo.GetByID(quotation.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving vehicle: %w", err)
	}

	oldDue := vehicle.Policy.RenewalDueDate
	newDue := calendar.AddOneYear(oldDue)
	vehicle.Policy.RenewalDueDate = newDue
	vehicle.Policy.Status = models.PolicyActive

	if err := o.vehicleRepo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	receipt := models.Receipt{
		ReceiptID:   o.receipts.NextReceiptID(),
		VehicleID:   vehicle.ID,
		Method:      quotation.Method,
		MethodLabel: quotation.Method.Label(),
		Bill:        quotation.Bill,
		OldDueDate:  oldDue,
		NewDueDate:  newDue,
		IssuedAt:    o.clock.Now(),
	}

	slog.Info("Renewal completed",
		"vehicle_id", vehicle.ID,
		"receipt_id", receipt.ReceiptID,
		"old_due_date", oldDue,
		"new_due_date", newDue,
		"total_paid", quotation.Bill.Total)

	return &RenewalOutcome{
		State:   models.RenewalRenewed,
		Message: "policy renewed",
		Receipt: &receipt,
	}, nil
}
