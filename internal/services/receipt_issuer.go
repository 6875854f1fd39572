package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Clock supplies "now" to the services so time-dependent behavior stays
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// RandomSource supplies the random component of receipt identifiers.
type RandomSource interface {
	IntN(n int) int
}

type systemRandom struct{}

func (systemRandom) IntN(n int) int { return rand.IntN(n) }

func SystemRandom() RandomSource { return systemRandom{} }

// ReceiptIssuer generates receipt identifiers of the form
// P<unix-epoch-seconds>-<6-digit-suffix>. Uniqueness per renewal is the
// requirement; the format matches the issued paper receipts.
type ReceiptIssuer struct {
	clock  Clock
	random RandomSource
}

func NewReceiptIssuer(clock Clock, random RandomSource) *ReceiptIssuer {
	return &ReceiptIssuer{clock: clock, random: random}
}

func (i *ReceiptIssuer) NextReceiptID() string {
	suffix := 100000 + i.random.IntN(900000)
	return fmt.Sprintf("P%d-%d", i.clock.Now().Unix(), suffix)
}
