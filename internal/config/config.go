package config

import (
	"os"
	"strconv"
)

type VehiclePolicyConfig struct {
	Port       string
	LogLevel   string
	TariffCfg  TariffConfig
	BillingCfg BillingConfig
}

// TariffConfig holds the premium and fine parameters. Injected into the
// calculators so tests can run with alternate tariffs.
type TariffConfig struct {
	BaseRatePercentage  float64
	AgeDepreciationRate float64
	MinimumAgeFactor    float64
	MinimumPremium      float64
	ElectricAdjustment  float64
	DieselAdjustment    float64
	GracePeriodDays     int
	FinePerDay          float64
}

// BillingConfig holds the payment fee, EMI and tax parameters.
type BillingConfig struct {
	GSTRate             float64
	CardFeeRate         float64
	CardFeeCap          float64
	NetBankingFee       float64
	BranchFee           float64
	EMIAnnualRate       float64
	LoyaltyPromoRate    float64
	LoyaltyPromoCap     float64
	FirstTimePromoValue float64
}

func New() *VehiclePolicyConfig {
	return &VehiclePolicyConfig{
		Port:       getEnvOrDefault("PORT", "8084"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		TariffCfg:  DefaultTariff(),
		BillingCfg: DefaultBilling(),
	}
}

// DefaultTariff returns the standard vehicle insurance tariff, overridable
// per parameter through the environment.
func DefaultTariff() TariffConfig {
	return TariffConfig{
		BaseRatePercentage:  getEnvFloat("TARIFF_BASE_RATE", 0.025),
		AgeDepreciationRate: getEnvFloat("TARIFF_AGE_DEPRECIATION_RATE", 0.03),
		MinimumAgeFactor:    getEnvFloat("TARIFF_MINIMUM_AGE_FACTOR", 0.7),
		MinimumPremium:      getEnvFloat("TARIFF_MINIMUM_PREMIUM", 5000),
		ElectricAdjustment:  getEnvFloat("TARIFF_ELECTRIC_ADJUSTMENT", -500),
		DieselAdjustment:    getEnvFloat("TARIFF_DIESEL_ADJUSTMENT", 250),
		GracePeriodDays:     getEnvInt("TARIFF_GRACE_PERIOD_DAYS", 30),
		FinePerDay:          getEnvFloat("TARIFF_FINE_PER_DAY", 50),
	}
}

func DefaultBilling() BillingConfig {
	return BillingConfig{
		GSTRate:             getEnvFloat("BILLING_GST_RATE", 0.18),
		CardFeeRate:         getEnvFloat("BILLING_CARD_FEE_RATE", 0.015),
		CardFeeCap:          getEnvFloat("BILLING_CARD_FEE_CAP", 150),
		NetBankingFee:       getEnvFloat("BILLING_NET_BANKING_FEE", 10),
		BranchFee:           getEnvFloat("BILLING_BRANCH_FEE", 50),
		EMIAnnualRate:       getEnvFloat("BILLING_EMI_ANNUAL_RATE", 0.12),
		LoyaltyPromoRate:    getEnvFloat("BILLING_LOYALTY_PROMO_RATE", 0.05),
		LoyaltyPromoCap:     getEnvFloat("BILLING_LOYALTY_PROMO_CAP", 500),
		FirstTimePromoValue: getEnvFloat("BILLING_FIRST_TIME_PROMO_VALUE", 100),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
