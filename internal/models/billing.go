package models

import (
	"time"

	"github.com/google/uuid"

	"vehicle-policy-service/internal/calendar"
)

// ============================================================================
// BILLING & RECEIPTS
// ============================================================================

// BillBreakdown is a fully itemized renewal bill. Computed fresh per
// quotation, never persisted.
type BillBreakdown struct {
	BasePremium    float64 `json:"base_premium"`
	Fine           float64 `json:"fine"`
	ConvenienceFee float64 `json:"convenience_fee"`
	EMIInterest    float64 `json:"emi_interest"`
	Discount       float64 `json:"discount"`
	GST            float64 `json:"gst"`
	Total          float64 `json:"total"`
}

// PendingQuotation holds a quoted bill awaiting confirmation. It is consumed
// exactly once, so a retried confirmation cannot advance the due date twice.
type PendingQuotation struct {
	ID            uuid.UUID     `json:"id"`
	VehicleID     uuid.UUID     `json:"vehicle_id"`
	Method        PaymentMethod `json:"method"`
	PromoCode     string        `json:"promo_code,omitempty"`
	Bill          BillBreakdown `json:"bill"`
	ReferenceDate calendar.Date `json:"reference_date"`
	QuotedAt      time.Time     `json:"quoted_at"`
}

// Receipt is the renewal record emitted after a confirmed payment.
type Receipt struct {
	ReceiptID   string        `json:"receipt_id"`
	VehicleID   uuid.UUID     `json:"vehicle_id"`
	Method      PaymentMethod `json:"method"`
	MethodLabel string        `json:"method_label"`
	Bill        BillBreakdown `json:"bill"`
	OldDueDate  calendar.Date `json:"old_due_date"`
	NewDueDate  calendar.Date `json:"new_due_date"`
	IssuedAt    time.Time     `json:"issued_at"`
}

// PaymentMethodInfo describes one entry of the payment method catalog.
type PaymentMethodInfo struct {
	Selector       int           `json:"selector"`
	Method         PaymentMethod `json:"method"`
	Label          string        `json:"label"`
	FeeDescription string        `json:"fee_description"`
}

// PaymentMethodCatalog lists the six supported methods in menu order with
// their fee terms.
func PaymentMethodCatalog() []PaymentMethodInfo {
	return []PaymentMethodInfo{
		{Selector: 1, Method: MethodCard, Label: MethodCard.Label(), FeeDescription: "1.5% convenience fee, max Rs. 150"},
		{Selector: 2, Method: MethodUPI, Label: MethodUPI.Label(), FeeDescription: "No convenience fee"},
		{Selector: 3, Method: MethodNetBanking, Label: MethodNetBanking.Label(), FeeDescription: "Rs. 10 flat"},
		{Selector: 4, Method: MethodBranch, Label: MethodBranch.Label(), FeeDescription: "Rs. 50 handling"},
		{Selector: 5, Method: MethodEMI3, Label: MethodEMI3.Label(), FeeDescription: "12% p.a. simple interest, pro-rated"},
		{Selector: 6, Method: MethodEMI6, Label: MethodEMI6.Label(), FeeDescription: "12% p.a. simple interest, pro-rated"},
	}
}
