package service

import (
	"context"
	"sort"
	"time"

	"ruleteo/internal/core/domain"
	"ruleteo/internal/core/ports"

	"github.com/shopspring/decimal"
)

// DefaultUpcomingLimit is how many upcoming dates the dashboard lists.
const DefaultUpcomingLimit = 6

// dashboardService implements ports.DashboardService.
type dashboardService struct {
	cards ports.CardService
	clock ports.Clock
	limit int
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(cards ports.CardService, clock ports.Clock) ports.DashboardService {
	return &dashboardService{
		cards: cards,
		clock: clock,
		limit: DefaultUpcomingLimit,
	}
}

// Overview aggregates balances across all cards and lists what is due next.
func (s *dashboardService) Overview(_ context.Context) (*ports.Overview, error) {
	state := s.cards.State()
	now := s.clock.Now()

	ov := &ports.Overview{
		TotalLimit:     decimal.Zero,
		TotalUsed:      decimal.Zero,
		TotalAvailable: decimal.Zero,
		Cards:          make([]ports.CardSummary, 0, len(state.Cards)),
		Upcoming:       UpcomingDates(state.Cards, now, s.limit),
		Requests:       state.Requests,
	}

	for i := range state.Cards {
		c := &state.Cards[i]
		ov.TotalLimit = ov.TotalLimit.Add(c.CreditLimit)
		ov.TotalUsed = ov.TotalUsed.Add(c.Used)
		ov.TotalAvailable = ov.TotalAvailable.Add(c.Available())
		ov.Cards = append(ov.Cards, ports.CardSummary{
			Card:               *c,
			Available:          c.Available(),
			UtilizationPercent: c.UtilizationPercent(),
		})
	}

	total := domain.Card{CreditLimit: ov.TotalLimit, Used: ov.TotalUsed}
	ov.UtilizationPercent = total.UtilizationPercent()

	return ov, nil
}

// NextOccurrence returns the next calendar date falling on day of month.
// Today counts as upcoming. Like BestTransferDate, days past the end of a
// month roll into the following one.
func NextOccurrence(day int, now time.Time) time.Time {
	y, m, dd := now.Date()
	loc := now.Location()
	today := time.Date(y, m, dd, 0, 0, 0, 0, loc)

	next := time.Date(y, m, day, 0, 0, 0, 0, loc)
	if next.Before(today) {
		next = time.Date(y, m+1, day, 0, 0, 0, 0, loc)
	}
	return next
}

// UpcomingDates lists each card's next cutoff and due date, soonest first.
// Ties keep card order with the cutoff before the due date. limit <= 0
// returns every date.
func UpcomingDates(cards []domain.Card, now time.Time, limit int) []ports.UpcomingDate {
	out := make([]ports.UpcomingDate, 0, 2*len(cards))
	for _, c := range cards {
		out = append(out,
			ports.UpcomingDate{Kind: ports.DateKindCutoff, CardID: c.ID, CardName: c.Name, Date: NextOccurrence(c.CutoffDay, now)},
			ports.UpcomingDate{Kind: ports.DateKindDue, CardID: c.ID, CardName: c.Name, Date: NextOccurrence(c.BillingDay, now)},
		)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
