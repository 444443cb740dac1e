package domain

import "github.com/shopspring/decimal"

var (
	fractionThreeQuarters = decimal.New(75, -2)
	fractionHalf          = decimal.New(5, -1)
	fractionQuarter       = decimal.New(25, -2)
)

// RefundAmount returns how much of the current reservation value goes
// back to the guest when the reservation is cancelled or rescheduled
// minutesUntilStart whole minutes before the slot starts. Lower bounds
// are inclusive: exactly 1440 minutes still refunds everything.
func RefundAmount(current decimal.Decimal, minutesUntilStart int64) decimal.Decimal {
	switch {
	case minutesUntilStart >= 24*60:
		return current
	case minutesUntilStart >= 12*60:
		return current.Mul(fractionThreeQuarters)
	case minutesUntilStart >= 2*60:
		return current.Mul(fractionHalf)
	case minutesUntilStart >= 1:
		return current.Mul(fractionQuarter)
	default:
		return decimal.Zero
	}
}
