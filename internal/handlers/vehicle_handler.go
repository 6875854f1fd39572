package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/models"
	"vehicle-policy-service/internal/repository"
	"vehicle-policy-service/internal/services"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	clock          services.Clock
}

func NewVehicleHandler(vehicleService *services.VehicleService, clock services.Clock) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		clock:          clock,
	}
}

func (h *VehicleHandler) Register(app *fiber.App) {
	group := app.Group("insurance/api/v1")

	group.Post("/vehicles", h.RegisterVehicle)          // POST /insurance/api/v1/vehicles
	group.Get("/vehicles/:id/summary", h.GetSummary)    // GET  /insurance/api/v1/vehicles/:id/summary?on=DD-MM-YYYY
	group.Get("/payment-methods", h.ListPaymentMethods) // GET  /insurance/api/v1/payment-methods
}

// RegisterVehicle creates a vehicle with a fresh policy; the first renewal
// due date is one year after the registration date.
func (h *VehicleHandler) RegisterVehicle(c fiber.Ctx) error {
	var req models.RegisterVehicleRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body: "+err.Error()))
	}

	if err := req.Validate(); err != nil {
		slog.Error("Request validation failed", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	vehicle, err := h.vehicleService.RegisterVehicle(req)
	if err != nil {
		slog.Error("Failed to register vehicle", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("REGISTRATION_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(models.CreateSuccessResponse(vehicle))
}

// GetSummary returns the vehicle & policy details with a freshly evaluated
// status. The reference date comes from the "on" query parameter and
// defaults to today.
func (h *VehicleHandler) GetSummary(c fiber.Ctx) error {
	vehicleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("INVALID_REQUEST", "Invalid vehicle ID"))
	}

	reference := dateFromTime(h.clock.Now())
	if onParam := c.Query("on"); onParam != "" {
		reference, err = calendar.Parse(onParam)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(
				models.CreateErrorResponse("INVALID_REQUEST", "Invalid reference date: "+err.Error()))
		}
	}

	summary, err := h.vehicleService.GetSummary(vehicleID, reference)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				models.CreateErrorResponse("NOT_FOUND", "Vehicle not found"))
		}
		slog.Error("Failed to build vehicle summary", "vehicle_id", vehicleID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			models.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(summary))
}

// ListPaymentMethods returns the payment method catalog with fee terms.
func (h *VehicleHandler) ListPaymentMethods(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(models.PaymentMethodCatalog()))
}

func dateFromTime(t time.Time) calendar.Date {
	return calendar.Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}
