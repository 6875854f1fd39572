package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"

	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/handlers"
	"vehicle-policy-service/internal/repository"
	"vehicle-policy-service/internal/services"
)

func setupLogging(level string) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}

func main() {
	cfg := config.New()
	setupLogging(cfg.LogLevel)

	vehicleRepo := repository.NewVehicleRepository()
	quotationRepo := repository.NewQuotationRepository()

	calculator := services.NewInsuranceCalculator(cfg.TariffCfg)
	evaluator := services.NewStatusEvaluator(calculator)
	processor := services.NewPaymentProcessor(cfg.BillingCfg)
	clock := services.SystemClock()
	receipts := services.NewReceiptIssuer(clock, services.SystemRandom())

	vehicleService := services.NewVehicleService(vehicleRepo, calculator, evaluator)
	orchestrator := services.NewRenewalOrchestrator(
		vehicleRepo, quotationRepo, calculator, evaluator, processor, receipts, clock)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Vehicle policy service is healthy")
	})

	handlers.NewVehicleHandler(vehicleService, clock).Register(app)
	handlers.NewRenewalHandler(orchestrator).Register(app)

	slog.Info("Starting vehicle policy service", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
