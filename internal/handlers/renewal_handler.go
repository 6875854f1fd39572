package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"vehicle-policy-service/internal/models"
	"vehicle-policy-service/internal/repository"
	"vehicle-policy-service/internal/services"
)

type RenewalHandler struct {
	orchestrator *services.RenewalOrchestrator
}

func NewRenewalHandler(orchestrator *services.RenewalOrchestrator) *RenewalHandler {
	return &RenewalHandler{orchestrator: orchestrator}
}

func (h *RenewalHandler) Register(app *fiber.App) {
	group := app.Group("insurance/api/v1")

	group.Post("/vehicles/:id/renewal/quotation", h.QuoteRenewal)        // POST /insurance/api/v1/vehicles/:id/renewal/quotation
	group.Post("/renewal/quotations/:id/confirmation", h.ConfirmRenewal) // POST /insurance/api/v1/renewal/quotations/:id/confirmation
}

// QuoteRenewal re-evaluates the policy and quotes a renewal bill. A policy
// that is not expired yields a Blocked outcome; an invalid method selection
// is rejected without charging.
func (h *RenewalHandler) QuoteRenewal(c fiber.Ctx) error {
	vehicleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("INVALID_REQUEST", "Invalid vehicle ID"))
	}

	var req models.QuoteRenewalRequest
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

	reference, err := req.ReferenceDate.ToDate()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	method, err := models.ParsePaymentMethodSelector(req.MethodSelector)
	if err != nil {
		slog.Warn("Invalid payment method selection",
			"vehicle_id", vehicleID,
			"selector", req.MethodSelector)
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("INVALID_METHOD", err.Error()))
	}

	outcome, err := h.orchestrator.PrepareQuotation(vehicleID, reference, method, req.PromoCode)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				models.CreateErrorResponse("NOT_FOUND", "Vehicle not found"))
		}
		if errors.Is(err, services.ErrInvalidPaymentMethod) {
			return c.Status(http.StatusBadRequest).JSON(
				models.CreateErrorResponse("INVALID_METHOD", err.Error()))
		}
		slog.Error("Failed to quote renewal", "vehicle_id", vehicleID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			models.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(outcome))
}

// ConfirmRenewal settles a pending quotation. Only "y"/"Y" proceeds; any
// other answer cancels with no change to the policy.
func (h *RenewalHandler) ConfirmRenewal(c fiber.Ctx) error {
	quotationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("INVALID_REQUEST", "Invalid quotation ID"))
	}

	var req models.ConfirmRenewalRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body: "+err.Error()))
	}

	outcome, err := h.orchestrator.ConfirmRenewal(quotationID, req.Affirmative())
	if err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				models.CreateErrorResponse("NOT_FOUND", "Quotation not found or already settled"))
		}
		slog.Error("Failed to confirm renewal", "quotation_id", quotationID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			models.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(outcome))
}
