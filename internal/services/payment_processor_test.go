package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-policy-service/internal/config"
	"vehicle-policy-service/internal/models"
)

func newTestProcessor() *PaymentProcessor {
	return NewPaymentProcessor(config.DefaultBilling())
}

func TestQuote_UPIWithoutPromo(t *testing.T) {
	bill, err := newTestProcessor().Quote(models.MethodUPI, 5000, 0, "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, bill.ConvenienceFee, "UPI carries no convenience fee")
	assert.Equal(t, 0.0, bill.EMIInterest)
	assert.Equal(t, 0.0, bill.Discount)
	assert.InDelta(t, 900.0, bill.GST, 0.001)
	assert.InDelta(t, 5900.0, bill.Total, 0.001)
}

func TestQuote_CardWithLoyaltyPromo(t *testing.T) {
	bill, err := newTestProcessor().Quote(models.MethodCard, 10000, 0, "LOYAL5")
	require.NoError(t, err)

	assert.InDelta(t, 150.0, bill.ConvenienceFee, 0.001, "1.5% of 10000 caps at 150")
	assert.InDelta(t, 500.0, bill.Discount, 0.001, "5% of 10150 caps at 500")
	assert.InDelta(t, 1737.0, bill.GST, 0.001, "18% of 9650")
	assert.InDelta(t, 11387.0, bill.Total, 0.001)
}

func TestQuote_EMI3WithFirstPaymentPromo(t *testing.T) {
	bill, err := newTestProcessor().Quote(models.MethodEMI3, 5000, 1500, "FIRST100")
	require.NoError(t, err)

	assert.Equal(t, 0.0, bill.ConvenienceFee, "EMI cost sits in the interest, not the fee")
	assert.InDelta(t, 195.0, bill.EMIInterest, 0.001, "12% p.a. on 6500 over 3/12 of a year")
	assert.InDelta(t, 100.0, bill.Discount, 0.001)
	assert.InDelta(t, 1187.1, bill.GST, 0.001, "18% of 6595")
	assert.InDelta(t, 7782.1, bill.Total, 0.001)
}

func TestQuote_EMI6InterestProRatedByTerm(t *testing.T) {
	three, err := newTestProcessor().Quote(models.MethodEMI3, 10000, 0, "")
	require.NoError(t, err)
	six, err := newTestProcessor().Quote(models.MethodEMI6, 10000, 0, "")
	require.NoError(t, err)

	assert.InDelta(t, 2*three.EMIInterest, six.EMIInterest, 0.001,
		"six months of simple interest is twice three months")
}

func TestQuote_FlatFees(t *testing.T) {
	netBanking, err := newTestProcessor().Quote(models.MethodNetBanking, 5000, 0, "")
	require.NoError(t, err)
	branch, err := newTestProcessor().Quote(models.MethodBranch, 5000, 0, "")
	require.NoError(t, err)

	assert.Equal(t, 10.0, netBanking.ConvenienceFee)
	assert.Equal(t, 50.0, branch.ConvenienceFee)
}

func TestQuote_CardFeeBelowCap(t *testing.T) {
	bill, err := newTestProcessor().Quote(models.MethodCard, 5000, 0, "")
	require.NoError(t, err)

	assert.InDelta(t, 75.0, bill.ConvenienceFee, 0.001, "1.5% of 5000 stays under the 150 cap")
}

func TestQuote_PromoCodeMatchingIsCaseInsensitiveAndTrimmed(t *testing.T) {
	processor := newTestProcessor()

	lower, err := processor.Quote(models.MethodUPI, 10000, 0, "loyal5")
	require.NoError(t, err)
	padded, err := processor.Quote(models.MethodUPI, 10000, 0, "  FIRST100  ")
	require.NoError(t, err)
	unknown, err := processor.Quote(models.MethodUPI, 10000, 0, "BOGUS")
	require.NoError(t, err)

	assert.InDelta(t, 500.0, lower.Discount, 0.001)
	assert.InDelta(t, 100.0, padded.Discount, 0.001)
	assert.Equal(t, 0.0, unknown.Discount, "unknown codes yield no discount")
}

func TestQuote_DiscountClampedToSubtotal(t *testing.T) {
	bill, err := newTestProcessor().Quote(models.MethodUPI, 40, 0, "FIRST100")
	require.NoError(t, err)

	assert.InDelta(t, 40.0, bill.Discount, 0.001, "discount never pushes the subtotal negative")
	assert.Equal(t, 0.0, bill.GST)
	assert.Equal(t, 0.0, bill.Total)
}

func TestQuote_TotalMonotonicInPremium(t *testing.T) {
	processor := newTestProcessor()
	previous := -1.0
	for _, premium := range []float64{5000, 6000, 8000, 12000, 20000} {
		bill, err := processor.Quote(models.MethodCard, premium, 500, "LOYAL5")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bill.Total, previous,
			"total must not decrease as the premium grows (premium %v)", premium)
		previous = bill.Total
	}
}

func TestQuote_InvalidMethodRejected(t *testing.T) {
	_, err := newTestProcessor().Quote(models.PaymentMethod("crypto"), 5000, 0, "")

	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}
