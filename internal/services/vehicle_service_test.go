package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/models"
	"vehicle-policy-service/internal/repository"
)

func newTestVehicleService() (*VehicleService, *repository.VehicleRepository) {
	repo := repository.NewVehicleRepository()
	calculator := NewInsuranceCalculator(config.DefaultTariff())
	return NewVehicleService(repo, calculator, NewStatusEvaluator(calculator)), repo
}

func TestRegisterVehicle_DerivesDueDateFromRegistration(t *testing.T) {
	service, _ := newTestVehicleService()

	vehicle, err := service.RegisterVehicle(models.RegisterVehicleRequest{
		Make:             "Hyundai",
		Model:            "i20",
		ManufactureYear:  2021,
		OriginalValue:    650000,
		FuelType:         "Petrol",
		RegistrationDate: models.DateInput{Day: 12, Month: 8, Year: 2023},
	})
	require.NoError(t, err)

	assert.Equal(t, calendar.Date{Day: 12, Month: 8, Year: 2023}, vehicle.Policy.RegistrationDate)
	assert.Equal(t, calendar.Date{Day: 12, Month: 8, Year: 2024}, vehicle.Policy.RenewalDueDate,
		"first renewal falls due one year after registration")
	assert.Equal(t, models.PolicyNew, vehicle.Policy.Status)
}

func TestRegisterVehicle_RejectsMalformedDate(t *testing.T) {
	service, _ := newTestVehicleService()

	_, err := service.RegisterVehicle(models.RegisterVehicleRequest{
		Make:             "Hyundai",
		Model:            "i20",
		ManufactureYear:  2021,
		OriginalValue:    650000,
		FuelType:         "Petrol",
		RegistrationDate: models.DateInput{Day: 12, Month: 14, Year: 2023},
	})

	assert.Error(t, err)
}

func TestGetSummary_EvaluatesAndCachesStatus(t *testing.T) {
	service, repo := newTestVehicleService()

	vehicle, err := service.RegisterVehicle(models.RegisterVehicleRequest{
		Make:             "Mahindra",
		Model:            "XUV300",
		ManufactureYear:  2019,
		OriginalValue:    900000,
		FuelType:         "Diesel",
		RegistrationDate: models.DateInput{Day: 1, Month: 4, Year: 2022},
	})
	require.NoError(t, err)

	// Due 01/04/2023, checked a year and a half later: long expired.
	summary, err := service.GetSummary(vehicle.ID, calendar.Date{Day: 1, Month: 10, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, models.PolicyExpired, summary.Status.Status)
	assert.True(t, summary.Status.Expired)
	assert.Greater(t, summary.Status.Fine, 0.0)
	// value 900000 -> base 22500, age 5 -> factor 0.85, diesel +250
	assert.InDelta(t, 22500*0.85+250, summary.BasePremium, 0.001)

	stored, err := repo.GetByID(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PolicyExpired, stored.Policy.Status,
		"the evaluation result is cached on the stored policy")
}

func TestGetSummary_ConcurrentWithRenewalKeepsAdvancedDueDate(t *testing.T) {
	// Summaries cache the evaluated status by writing the vehicle back, so a
	// summary racing a confirmed renewal must not write a pre-renewal copy
	// over the advanced due date.
	f := newOrchestratorFixture(t, calendar.Date{Day: 10, Month: 1, Year: 2023})
	calculator := NewInsuranceCalculator(config.DefaultTariff())
	service := NewVehicleService(f.vehicleRepo, calculator, NewStatusEvaluator(calculator))
	reference := calendar.Date{Day: 15, Month: 3, Year: 2024}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if _, err := service.GetSummary(f.vehicle.ID, reference); err != nil {
				return
			}
		}
	}()

	outcome, err := f.orchestrator.PrepareQuotation(f.vehicle.ID, reference, models.MethodUPI, "")
	require.NoError(t, err)
	require.Equal(t, models.RenewalQuoting, outcome.State)

	result, err := f.orchestrator.ConfirmRenewal(outcome.Quotation.ID, true)
	require.NoError(t, err)
	require.Equal(t, models.RenewalRenewed, result.State)

	close(stop)
	<-done

	stored, err := f.vehicleRepo.GetByID(f.vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Day: 10, Month: 1, Year: 2025}, stored.Policy.RenewalDueDate,
		"a concurrent summary evaluation must not revert a settled renewal")
}

func TestGetSummary_UnknownVehicle(t *testing.T) {
	service, _ := newTestVehicleService()

	_, err := service.GetSummary(uuid.New(), calendar.Date{Day: 1, Month: 10, Year: 2024})

	assert.ErrorIs(t, err, repository.ErrVehicleNotFound)
}
