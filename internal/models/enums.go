package models

import "fmt"

type PolicyStatus string

const (
	PolicyNew      PolicyStatus = "new"
	PolicyActive   PolicyStatus = "active"
	PolicyDueGrace PolicyStatus = "due_grace"
	PolicyExpired  PolicyStatus = "expired"
)

// DisplayName returns the human-readable status label used on summaries and
// banners.
func (s PolicyStatus) DisplayName() string {
	switch s {
	case PolicyNew:
		return "New"
	case PolicyActive:
		return "Active"
	case PolicyDueGrace:
		return "Due (Grace Period)"
	case PolicyExpired:
		return "OVERDUE / EXPIRED"
	default:
		return string(s)
	}
}

type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetBanking PaymentMethod = "net_banking"
	MethodBranch     PaymentMethod = "branch"
	MethodEMI3       PaymentMethod = "emi_3"
	MethodEMI6       PaymentMethod = "emi_6"
)

// paymentMethodSelectors maps the 1-6 menu selection to a payment method.
var paymentMethodSelectors = map[int]PaymentMethod{
	1: MethodCard,
	2: MethodUPI,
	3: MethodNetBanking,
	4: MethodBranch,
	5: MethodEMI3,
	6: MethodEMI6,
}

// ParsePaymentMethodSelector converts a raw menu selection into a payment
// method. Any value outside 1-6 is rejected.
func ParsePaymentMethodSelector(selector int) (PaymentMethod, error) {
	method, ok := paymentMethodSelectors[selector]
	if !ok {
		return "", fmt.Errorf("payment method selector must be between 1 and 6, got %d", selector)
	}
	return method, nil
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCard, MethodUPI, MethodNetBanking, MethodBranch, MethodEMI3, MethodEMI6:
		return true
	default:
		return false
	}
}

// Months returns the EMI term length, or 0 for non-EMI methods.
func (m PaymentMethod) Months() int {
	switch m {
	case MethodEMI3:
		return 3
	case MethodEMI6:
		return 6
	default:
		return 0
	}
}

// Label returns the customer-facing method name.
func (m PaymentMethod) Label() string {
	switch m {
	case MethodCard:
		return "Credit/Debit Card"
	case MethodUPI:
		return "UPI"
	case MethodNetBanking:
		return "NetBanking"
	case MethodBranch:
		return "Pay at Branch"
	case MethodEMI3:
		return "EMI (3 months)"
	case MethodEMI6:
		return "EMI (6 months)"
	default:
		return "Unknown"
	}
}

type RenewalState string

const (
	RenewalBlocked   RenewalState = "blocked"
	RenewalQuoting   RenewalState = "quoting"
	RenewalRenewed   RenewalState = "renewed"
	RenewalCancelled RenewalState = "cancelled"
)
