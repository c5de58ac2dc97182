package service

import (
	"context"
	"testing"
	"time"

	"ruleteo/internal/core/domain"
	"ruleteo/internal/core/ports"
	"ruleteo/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dashboardCards() []domain.Card {
	return []domain.Card{
		{ID: seqID(1), Name: "A", Bank: domain.BankVisa, CreditLimit: dec("1000"), Used: dec("250"), CutoffDay: 12, BillingDay: 28, CommissionRate: dec("0.03")},
		{ID: seqID(2), Name: "B", Bank: domain.BankAmex, CreditLimit: dec("1000"), Used: dec("1500"), CutoffDay: 5, BillingDay: 10, CommissionRate: dec("0.02")},
	}
}

func TestDashboardService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cards := mocks.NewMockCardService(ctrl)
	clock := mocks.NewMockClock(ctrl)
	svc := NewDashboardService(cards, clock)

	reqs := []domain.TransferRequest{{ID: seqID(9), Status: domain.RequestStatusPending}}
	cards.EXPECT().State().Return(domain.AppState{Cards: dashboardCards(), Requests: reqs})
	clock.EXPECT().Now().Return(date(2024, 3, 10))

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.True(t, dec("2000").Equal(ov.TotalLimit))
	assert.True(t, dec("1750").Equal(ov.TotalUsed))
	// B is over its limit and contributes nothing available.
	assert.True(t, dec("750").Equal(ov.TotalAvailable))
	assert.Equal(t, int64(88), ov.UtilizationPercent)

	require.Len(t, ov.Cards, 2)
	assert.Equal(t, int64(25), ov.Cards[0].UtilizationPercent)
	assert.True(t, dec("750").Equal(ov.Cards[0].Available))
	assert.Equal(t, int64(100), ov.Cards[1].UtilizationPercent)
	assert.True(t, ov.Cards[1].Available.IsZero())

	assert.Equal(t, reqs, ov.Requests)
	require.Len(t, ov.Upcoming, 4)
	assert.Equal(t, ports.DateKindDue, ov.Upcoming[0].Kind)
	assert.Equal(t, "B", ov.Upcoming[0].CardName)
	assert.Equal(t, date(2024, 3, 10), ov.Upcoming[0].Date)
}

func TestDashboardService_Overview_NoCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cards := mocks.NewMockCardService(ctrl)
	clock := mocks.NewMockClock(ctrl)
	svc := NewDashboardService(cards, clock)

	cards.EXPECT().State().Return(domain.AppState{Cards: []domain.Card{}, Requests: []domain.TransferRequest{}})
	clock.EXPECT().Now().Return(date(2024, 3, 10))

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, ov.TotalLimit.IsZero())
	assert.Equal(t, int64(0), ov.UtilizationPercent)
	assert.Empty(t, ov.Cards)
	assert.Empty(t, ov.Upcoming)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name string
		day  int
		now  time.Time
		want time.Time
	}{
		{"later this month", 18, date(2024, 3, 10), date(2024, 3, 18)},
		{"today counts", 10, date(2024, 3, 10), date(2024, 3, 10)},
		{"already passed", 5, date(2024, 3, 10), date(2024, 4, 5)},
		{"year end", 2, date(2024, 12, 20), date(2025, 1, 2)},
		{"day past month end rolls over", 31, date(2024, 4, 10), date(2024, 5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextOccurrence(tt.day, tt.now))
		})
	}
}

func TestNextOccurrence_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)
	assert.Equal(t, date(2024, 3, 10), NextOccurrence(10, now))
}

func TestUpcomingDates_SortedAndLimited(t *testing.T) {
	got := UpcomingDates(dashboardCards(), date(2024, 3, 10), DefaultUpcomingLimit)

	require.Len(t, got, 4)
	want := []struct {
		name string
		kind ports.DateKind
		date time.Time
	}{
		{"B", ports.DateKindDue, date(2024, 3, 10)},
		{"A", ports.DateKindCutoff, date(2024, 3, 12)},
		{"A", ports.DateKindDue, date(2024, 3, 28)},
		{"B", ports.DateKindCutoff, date(2024, 4, 5)},
	}
	for i, w := range want {
		assert.Equal(t, w.name, got[i].CardName, "index %d", i)
		assert.Equal(t, w.kind, got[i].Kind, "index %d", i)
		assert.Equal(t, w.date, got[i].Date, "index %d", i)
	}

	assert.Len(t, UpcomingDates(dashboardCards(), date(2024, 3, 10), 3), 3)
	assert.Len(t, UpcomingDates(dashboardCards(), date(2024, 3, 10), 0), 4)
}

func TestUpcomingDates_TiesKeepCardOrder(t *testing.T) {
	cards := []domain.Card{
		{ID: seqID(1), Name: "first", CutoffDay: 15, BillingDay: 15},
		{ID: seqID(2), Name: "second", CutoffDay: 15, BillingDay: 20},
	}

	got := UpcomingDates(cards, date(2024, 3, 10), 0)

	require.Len(t, got, 4)
	assert.Equal(t, "first", got[0].CardName)
	assert.Equal(t, ports.DateKindCutoff, got[0].Kind)
	assert.Equal(t, "first", got[1].CardName)
	assert.Equal(t, ports.DateKindDue, got[1].Kind)
	assert.Equal(t, "second", got[2].CardName)
}
