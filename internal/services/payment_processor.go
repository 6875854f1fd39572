package services

import (
	"errors"
	"log/slog"
	"strings"

	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/models"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

const (
	promoLoyalty  = "LOYAL5"
	promoFirstPay = "FIRST100"
)

// PaymentProcessor produces itemized renewal bills: method convenience fee,
// EMI interest, promo discount, then GST on the discounted subtotal.
type PaymentProcessor struct {
	billing config.BillingConfig
}

func NewPaymentProcessor(billing config.BillingConfig) *PaymentProcessor {
	return &PaymentProcessor{billing: billing}
}

// Quote builds the full bill for the given method and promo code. An
// unrecognized method is a caller contract violation and returns
// ErrInvalidPaymentMethod rather than defaulting.
func (p *PaymentProcessor) Quote(method models.PaymentMethod, basePremium, fine float64, promoCode string) (models.BillBreakdown, error) {
	if !method.IsValid() {
		return models.BillBreakdown{}, ErrInvalidPaymentMethod
	}

	bill := models.BillBreakdown{
		BasePremium: basePremium,
		Fine:        fine,
	}

	bill.ConvenienceFee = p.convenienceFee(method, basePremium+fine)
	bill.EMIInterest = p.emiInterest(method, basePremium+fine)

	// Promo applies to the pre-GST subtotal and can never push it negative.
	subtotal := basePremium + fine + bill.ConvenienceFee + bill.EMIInterest
	bill.Discount = p.applyPromo(promoCode, subtotal)
	if bill.Discount > subtotal {
		bill.Discount = subtotal
	}
	taxed := subtotal - bill.Discount

	bill.GST = taxed * p.billing.GSTRate
	bill.Total = taxed + bill.GST

	slog.Debug("Quoted renewal bill",
		"method", method,
		"base_premium", basePremium,
		"fine", fine,
		"convenience_fee", bill.ConvenienceFee,
		"emi_interest", bill.EMIInterest,
		"discount", bill.Discount,
		"gst", bill.GST,
		"total", bill.Total)

	return bill, nil
}

func (p *PaymentProcessor) convenienceFee(method models.PaymentMethod, amount float64) float64 {
	switch method {
	case models.MethodCard:
		fee := p.billing.CardFeeRate * amount
		if fee > p.billing.CardFeeCap {
			fee = p.billing.CardFeeCap
		}
		return fee
	case models.MethodNetBanking:
		return p.billing.NetBankingFee
	case models.MethodBranch:
		return p.billing.BranchFee
	default:
		// UPI and EMI carry no convenience fee; EMI cost sits in the interest.
		return 0
	}
}

// emiInterest computes simple interest pro-rated by term length. The
// convenience fee is excluded from the financed principal.
func (p *PaymentProcessor) emiInterest(method models.PaymentMethod, principal float64) float64 {
	months := method.Months()
	if months == 0 {
		return 0
	}
	return p.billing.EMIAnnualRate * principal * (float64(months) / 12.0)
}

// applyPromo matches the code case-insensitively against the known promo
// set. Unknown or empty codes yield no discount.
func (p *PaymentProcessor) applyPromo(code string, subtotal float64) float64 {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case promoLoyalty:
		discount := p.billing.LoyaltyPromoRate * subtotal
		if discount > p.billing.LoyaltyPromoCap {
			discount = p.billing.LoyaltyPromoCap
		}
		return discount
	case promoFirstPay:
		return p.billing.FirstTimePromoValue
	default:
		return 0
	}
}
