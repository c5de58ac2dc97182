package service

import (
	"time"

	"ruleteo/internal/core/domain"

	"github.com/shopspring/decimal"
)

// BestTransferDate returns the day after the card's next statement cutoff,
// which gives a transfer the longest grace period before payment is due.
//
// The cutoff is compared by calendar date: on the cutoff day itself this
// month's cutoff is still used. Days past the end of a month are not
// clamped, so cutoffDay 31 in April lands on 1 May and the result is 2 May.
func BestTransferDate(cutoffDay int, today time.Time) time.Time {
	y, m, dd := today.Date()
	loc := today.Location()
	day := time.Date(y, m, dd, 0, 0, 0, 0, loc)

	cutoff := time.Date(y, m, cutoffDay, 0, 0, 0, 0, loc)
	if day.After(cutoff) {
		cutoff = time.Date(y, m+1, cutoffDay, 0, 0, 0, 0, loc)
	}
	return cutoff.AddDate(0, 0, 1)
}

// SimulateTransfer previews moving amount from origin to destination.
// It returns nil when either card is missing or amount is not positive, and
// never modifies the cards it is given.
func SimulateTransfer(origin, destination *domain.Card, amount decimal.Decimal, now time.Time) *domain.SimulationResult {
	if origin == nil || destination == nil || !amount.IsPositive() {
		return nil
	}

	commission := domain.Commission(amount, origin.CommissionRate)
	newOrigin, newDest := domain.ApplyTransfer(origin.Used, destination.Used, amount, commission)

	return &domain.SimulationResult{
		Commission:         commission,
		BestDate:           BestTransferDate(origin.CutoffDay, now),
		NewOriginUsed:      newOrigin,
		NewDestinationUsed: newDest,
	}
}
