package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/models"
	"vehicle-policy-service/internal/repository"
)

// VehicleService registers vehicles and assembles the vehicle & policy
// summary view.
type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
	calculator  *InsuranceCalculator
	evaluator   *StatusEvaluator
}

func NewVehicleService(
	vehicleRepo *repository.VehicleRepository,
	calculator *InsuranceCalculator,
	evaluator *StatusEvaluator,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		calculator:  calculator,
		evaluator:   evaluator,
	}
}

// RegisterVehicle creates a vehicle with a fresh policy. The first renewal
// due date is derived immediately from the registration date.
func (s *VehicleService) RegisterVehicle(req models.RegisterVehicleRequest) (*models.Vehicle, error) {
	registrationDate, err := req.RegistrationDate.ToDate()
	if err != nil {
		return nil, fmt.Errorf("invalid registration date: %w", err)
	}

	vehicle := &models.Vehicle{
		ID:              uuid.New(),
		Make:            req.Make,
		Model:           req.Model,
		ManufactureYear: req.ManufactureYear,
		OriginalValue:   req.OriginalValue,
		FuelType:        req.FuelType,
		Policy:          models.NewPolicy(registrationDate),
	}

	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, fmt.Errorf("failed to store vehicle: %w", err)
	}

	return vehicle, nil
}

// GetSummary evaluates the policy against the reference date and returns the
// vehicle & policy details with the current premium and fine. The evaluated
// status is cached back onto the policy, so the evaluate-and-cache runs under
// the per-vehicle lock: writing the vehicle back unlocked could revert a
// renewal committed between the read and the write.
func (s *VehicleService) GetSummary(vehicleID uuid.UUID, reference calendar.Date) (*models.VehicleSummaryResponse, error) {
	s.vehicleRepo.LockVehicle(vehicleID)
	defer s.vehicleRepo.UnlockVehicle(vehicleID)

	vehicle, err := s.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving vehicle: %w", err)
	}

	status := s.evaluator.Evaluate(vehicle.Policy, reference)
	premium := s.calculator.CalculatePremium(vehicle, reference.Year)

	vehicle.Policy.Status = status.Status
	if err := s.vehicleRepo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("failed to cache policy status: %w", err)
	}

	slog.Info("Evaluated policy status",
		"vehicle_id", vehicle.ID,
		"status", status.Status,
		"days_to_due", status.DaysToDue,
		"fine", status.Fine,
		"base_premium", premium)

	return &models.VehicleSummaryResponse{
		Vehicle:       *vehicle,
		Status:        status,
		StatusLabel:   status.Status.DisplayName(),
		BasePremium:   premium,
		ReferenceDate: reference.String(),
	}, nil
}
