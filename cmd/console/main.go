package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"vehicle-policy-service/internal/calendar"
	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/models"
	"vehicle-policy-service/internal/repository"
	"vehicle-policy-service/internal/services"
)

// console runs one interactive renewal session for a single vehicle. All
// input validation happens here with local re-prompting; the services only
// ever see well-formed values.
type console struct {
	reader         *bufio.Reader
	vehicleService *services.VehicleService
	orchestrator   *services.RenewalOrchestrator
}

func main() {
	// Keep service logs off the interactive transcript.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg := config.New()

	vehicleRepo := repository.NewVehicleRepository()
	quotationRepo := repository.NewQuotationRepository()
	calculator := services.NewInsuranceCalculator(cfg.TariffCfg)
	evaluator := services.NewStatusEvaluator(calculator)
	processor := services.NewPaymentProcessor(cfg.BillingCfg)
	clock := services.SystemClock()
	receipts := services.NewReceiptIssuer(clock, services.SystemRandom())

	c := &console{
		reader:         bufio.NewReader(os.Stdin),
		vehicleService: services.NewVehicleService(vehicleRepo, calculator, evaluator),
		orchestrator: services.NewRenewalOrchestrator(
			vehicleRepo, quotationRepo, calculator, evaluator, processor, receipts, clock),
	}
	c.run()
}

func (c *console) run() {
	fmt.Println("================================================")
	fmt.Println("     Vehicle Insurance Renewal System v2.0")
	fmt.Println("================================================")

	var req models.RegisterVehicleRequest
	var err error
	if req.Make, err = c.readLine("Enter Vehicle Make : "); err != nil {
		reportInputClosed()
		return
	}
	if req.Model, err = c.readLine("Enter Vehicle Model: "); err != nil {
		reportInputClosed()
		return
	}
	if req.ManufactureYear, err = c.readInt("Enter Manufacturing Year (e.g., 2022): "); err != nil {
		reportInputClosed()
		return
	}
	if req.OriginalValue, err = c.readPositiveFloat("Enter Original Vehicle Value (Rs.): "); err != nil {
		reportInputClosed()
		return
	}
	if req.FuelType, err = c.readLine("Enter Fuel Type (Petrol/Diesel/Electric): "); err != nil {
		reportInputClosed()
		return
	}
	regDate, err := c.readDate("Enter Vehicle Registration Date")
	if err != nil {
		reportInputClosed()
		return
	}
	req.RegistrationDate = models.DateInput{Day: regDate.Day, Month: regDate.Month, Year: regDate.Year}

	currentDate, err := c.readDate("Enter Current Date to Check Status")
	if err != nil {
		reportInputClosed()
		return
	}

	vehicle, err := c.vehicleService.RegisterVehicle(req)
	if err != nil {
		fmt.Printf("[!] Could not register vehicle: %v\n", err)
		return
	}

	summary, err := c.vehicleService.GetSummary(vehicle.ID, currentDate)
	if err != nil {
		fmt.Printf("[!] Could not evaluate policy: %v\n", err)
		return
	}

	printVehicleInfo(summary)
	printStatusBanner(summary.Status)

	fmt.Println("\n==================== RENEWAL SUMMARY ====================")
	fmt.Printf("%-28s Rs. %.2f\n", "Base Premium:", summary.BasePremium)
	fmt.Printf("%-28s Rs. %.2f\n", "Late Payment Fine:", summary.Status.Fine)
	fmt.Println("========================================================")

	if summary.Status.Expired {
		fmt.Println("Policy is EXPIRED. Proceeding to renewal...")
		c.performRenewal(summary, currentDate)
	} else {
		fmt.Println("[INFO] Policy is NOT EXPIRED. Renewal is disabled.")
	}

	fmt.Println("\nGoodbye!")
}

func (c *console) performRenewal(summary *models.VehicleSummaryResponse, currentDate calendar.Date) {
	printPaymentMethods()

	selector, err := c.readInt("Choose a payment method (1-6): ")
	if err != nil {
		reportInputClosed()
		return
	}
	method, err := models.ParsePaymentMethodSelector(selector)
	if err != nil {
		fmt.Println("[!] Invalid choice.")
		fmt.Println("Payment selection invalid. Renewal not completed.")
		return
	}

	promo, err := c.readLine("Enter promo code (or press Enter to skip): ")
	if err != nil {
		reportInputClosed()
		return
	}

	outcome, err := c.orchestrator.PrepareQuotation(summary.Vehicle.ID, currentDate, method, promo)
	if err != nil {
		fmt.Println("Payment selection invalid. Renewal not completed.")
		return
	}
	if outcome.State != models.RenewalQuoting {
		fmt.Printf("[INFO] %s\n", outcome.Message)
		return
	}

	printPaymentSummary(outcome.Quotation.Bill)
	answer, err := c.readLine("Proceed with payment? (y/n): ")
	if err != nil {
		reportInputClosed()
		return
	}
	confirmed := answer == "y" || answer == "Y"

	result, err := c.orchestrator.ConfirmRenewal(outcome.Quotation.ID, confirmed)
	if err != nil {
		fmt.Printf("[!] Renewal failed: %v\n", err)
		return
	}
	if result.State != models.RenewalRenewed {
		fmt.Println("Payment cancelled. Renewal not completed.")
		return
	}

	printReceipt(result.Receipt, &summary.Vehicle)
}

// ============================================================================
// INPUT HELPERS
// ============================================================================

// errInputClosed marks a read that hit the end of stdin; the re-prompt loops
// must stop instead of spinning on it.
var errInputClosed = errors.New("input closed")

func reportInputClosed() {
	fmt.Println("\n[!] Input closed. Exiting.")
}

func (c *console) readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errInputClosed
	}
	return strings.TrimSpace(line), nil
}

func (c *console) readInt(prompt string) (int, error) {
	for {
		raw, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(raw)
		if convErr == nil {
			return value, nil
		}
		fmt.Println("[!] Invalid input. Please enter a valid value.")
	}
}

func (c *console) readPositiveFloat(prompt string) (float64, error) {
	for {
		raw, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseFloat(raw, 64)
		if convErr == nil && value > 0 {
			return value, nil
		}
		fmt.Println("[!] Invalid input. Please enter a valid value.")
	}
}

func (c *console) readDate(title string) (calendar.Date, error) {
	prompt := fmt.Sprintf("%s (DD MM YYYY): ", title)
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return calendar.Date{}, err
		}
		prompt = "[!] Invalid format. Please enter as DD MM YYYY: "
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		day, err1 := strconv.Atoi(fields[0])
		month, err2 := strconv.Atoi(fields[1])
		year, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		date, err := calendar.NewDate(day, month, year)
		if err != nil {
			prompt = "[!] Invalid date values. Try again (DD MM YYYY): "
			continue
		}
		return date, nil
	}
}

// ============================================================================
// PRESENTATION
// ============================================================================

func printVehicleInfo(summary *models.VehicleSummaryResponse) {
	v := summary.Vehicle
	fmt.Println("\n================================================")
	fmt.Println("            VEHICLE & POLICY DETAILS")
	fmt.Println("================================================")
	fmt.Printf("%-22s%s (%s)\n", "Vehicle:", v.Model, v.Make)
	fmt.Printf("%-22s%d\n", "Manufacture Year:", v.ManufactureYear)
	fmt.Printf("%-22s%s\n", "Fuel Type:", v.FuelType)
	fmt.Printf("%-22sRs. %.2f\n", "Original Value:", v.OriginalValue)
	fmt.Println("\n------------------ POLICY DATES ------------------")
	fmt.Printf("%-22s%s\n", "Registration Date:", v.Policy.RegistrationDate)
	fmt.Printf("%-22s%s\n", "Renewal Due Date:", v.Policy.RenewalDueDate)
	fmt.Printf("%-22s%s\n", "Policy Status:", v.Policy.Status.DisplayName())
	fmt.Println("================================================")
}

func printStatusBanner(s models.StatusResult) {
	fmt.Println("\n==================== POLICY STATUS ====================")
	fmt.Printf("Status    : %s\n", s.Status.DisplayName())
	coverage := "NOT EXPIRED"
	if s.Expired {
		coverage = "EXPIRED"
	}
	fmt.Printf("Coverage  : %s\n", coverage)
	if s.DaysToDue >= 0 {
		fmt.Printf("Due in    : %d day(s)\n", s.DaysToDue)
	} else {
		fmt.Printf("Overdue   : %d day(s)\n", -s.DaysToDue)
	}
	if s.Fine > 0 {
		fmt.Printf("Late fine : Rs. %.2f\n", s.Fine)
	}
	fmt.Println("======================================================")
}

func printPaymentMethods() {
	fmt.Println("\n-------------------- PAYMENT METHODS --------------------")
	for _, info := range models.PaymentMethodCatalog() {
		fmt.Printf("  %d. %-20s (%s)\n", info.Selector, info.Label, info.FeeDescription)
	}
	fmt.Println("---------------------------------------------------------")
}

func printPaymentSummary(b models.BillBreakdown) {
	fmt.Println("\n==================== PAYMENT SUMMARY ====================")
	printBillLines(b)
	fmt.Println("----------------------------------------------------------")
	fmt.Printf("%-28sRs. %.2f\n", "TOTAL PAYABLE:", b.Total)
	fmt.Println("==========================================================")
}

func printReceipt(r *models.Receipt, v *models.Vehicle) {
	fmt.Println("\n==================== TAX INVOICE / RECEIPT ====================")
	fmt.Printf("Receipt ID: %s\n", r.ReceiptID)
	fmt.Printf("Vehicle   : %s (%s), %d\n", v.Model, v.Make, v.ManufactureYear)
	fmt.Printf("Fuel Type : %s\n", v.FuelType)
	fmt.Printf("Policy    : Due %s  ->  Next Due %s\n", r.OldDueDate, r.NewDueDate)
	fmt.Println("---------------------------------------------------------------")
	printBillLines(r.Bill)
	fmt.Println("---------------------------------------------------------------")
	fmt.Printf("%-28sRs. %.2f\n", "TOTAL PAID:", r.Bill.Total)
	fmt.Printf("Payment via: %s\n", r.MethodLabel)
	fmt.Println("========================== THANK YOU ==========================")
}

func printBillLines(b models.BillBreakdown) {
	fmt.Printf("%-28sRs. %.2f\n", "Base Premium:", b.BasePremium)
	fmt.Printf("%-28sRs. %.2f\n", "Late Payment Fine:", b.Fine)
	fmt.Printf("%-28sRs. %.2f\n", "Convenience Fee:", b.ConvenienceFee)
	fmt.Printf("%-28sRs. %.2f\n", "EMI Interest:", b.EMIInterest)
	fmt.Printf("%-28sRs. -%.2f\n", "Promo Discount:", b.Discount)
	fmt.Printf("%-28sRs. %.2f\n", "GST (18%):", b.GST)
}
