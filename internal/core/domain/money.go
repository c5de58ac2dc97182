package domain

import "github.com/shopspring/decimal"

// CommissionPlaces is the number of decimal places commissions are rounded to.
const CommissionPlaces = 2

// Bounds for money and rate inputs. Arithmetic on a decimal costs time and
// memory proportional to its exponent, so inputs outside them are refused.
const (
	MaxMoneyScale     = 8
	MaxMoneyIntDigits = 15
)

// WithinMoneyBounds reports whether d has at most MaxMoneyScale decimal
// places and at most MaxMoneyIntDigits digits before the decimal point.
func WithinMoneyBounds(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	return exp >= -MaxMoneyScale && d.NumDigits()+exp <= MaxMoneyIntDigits
}

// FloorZero clamps negative amounts to zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Commission returns amount*rate rounded half away from zero to two places.
func Commission(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(CommissionPlaces)
}

// ApplyTransfer returns the balances of both cards after moving amount from
// origin to destination. The origin is charged the amount plus commission;
// the destination is reduced by the amount alone. Both floor at zero.
//
// Previews and committed transfers must both go through this function so the
// committed balances always equal the previewed ones.
func ApplyTransfer(originUsed, destinationUsed, amount, commission decimal.Decimal) (newOrigin, newDestination decimal.Decimal) {
	newOrigin = FloorZero(originUsed.Add(amount).Add(commission))
	newDestination = FloorZero(destinationUsed.Sub(amount))
	return newOrigin, newDestination
}
