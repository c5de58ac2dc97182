package service

import (
	"testing"
	"time"

	"ruleteo/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBestTransferDate(t *testing.T) {
	tests := []struct {
		name   string
		cutoff int
		today  time.Time
		want   time.Time
	}{
		{"before cutoff uses this month", 17, date(2024, 3, 10), date(2024, 3, 18)},
		{"after cutoff uses next month", 17, date(2024, 3, 20), date(2024, 4, 18)},
		{"on cutoff day uses this month", 17, date(2024, 3, 17), date(2024, 3, 18)},
		{"late in the cutoff day", 17, time.Date(2024, 3, 17, 23, 59, 0, 0, time.Local), date(2024, 3, 18)},
		{"december rolls into january", 10, date(2024, 12, 15), date(2025, 1, 11)},
		{"cutoff 28 ends the month", 28, date(2024, 2, 1), date(2024, 2, 29)},
		{"day 31 in a 30-day month rolls over", 31, date(2024, 4, 10), date(2024, 5, 2)},
		{"day 30 in february rolls over", 30, date(2023, 2, 5), date(2023, 3, 3)},
		{"on day 31 of january", 31, date(2024, 1, 31), date(2024, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestTransferDate(tt.cutoff, tt.today)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want.Format(time.DateOnly), got.Format(time.DateOnly))
		})
	}
}

func TestBestTransferDate_AlwaysAfterToday(t *testing.T) {
	start := date(2024, 1, 1)
	for i := 0; i < 366; i++ {
		today := start.AddDate(0, 0, i)
		for cutoff := 1; cutoff <= 27; cutoff++ {
			got := BestTransferDate(cutoff, today)
			require.True(t, got.After(today), "cutoff %d today %s got %s", cutoff, today.Format(time.DateOnly), got.Format(time.DateOnly))
			assert.Equal(t, cutoff+1, got.Day())
		}
	}
}

func TestBestTransferDate_KeepsLocation(t *testing.T) {
	lima := time.FixedZone("PET", -5*60*60)
	got := BestTransferDate(17, time.Date(2024, 3, 10, 22, 0, 0, 0, lima))

	assert.Equal(t, lima, got.Location())
	assert.Equal(t, 18, got.Day())
	assert.Zero(t, got.Hour())
}

func TestSimulateTransfer_Scenario(t *testing.T) {
	origin := &domain.Card{ID: uuid.New(), Used: dec("1000"), CommissionRate: dec("0.03"), CutoffDay: 17}
	dest := &domain.Card{ID: uuid.New(), Used: dec("500")}

	res := SimulateTransfer(origin, dest, dec("200"), date(2024, 3, 10))
	require.NotNil(t, res)

	assert.Equal(t, "6.00", res.Commission.StringFixed(2))
	assert.Equal(t, "1206.00", res.NewOriginUsed.StringFixed(2))
	assert.True(t, dec("300").Equal(res.NewDestinationUsed))
	assert.True(t, date(2024, 3, 18).Equal(res.BestDate))
}

func TestSimulateTransfer_CommissionProperty(t *testing.T) {
	tests := []struct {
		amount string
		rate   string
	}{
		{"100", "0.035"},
		{"1234.56", "0.028"},
		{"0.01", "0.5"},
		{"99999.99", "0"},
		{"10", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"@"+tt.rate, func(t *testing.T) {
			origin := &domain.Card{Used: dec("0"), CommissionRate: dec(tt.rate), CutoffDay: 1}
			dest := &domain.Card{Used: dec("0")}

			res := SimulateTransfer(origin, dest, dec(tt.amount), date(2024, 5, 5))
			require.NotNil(t, res)
			want := dec(tt.amount).Mul(dec(tt.rate)).Round(2)
			assert.True(t, want.Equal(res.Commission), "want %s got %s", want, res.Commission)
		})
	}
}

func TestSimulateTransfer_DestinationFloorsAtZero(t *testing.T) {
	origin := &domain.Card{Used: dec("0"), CommissionRate: dec("0.03"), CutoffDay: 5}
	dest := &domain.Card{Used: dec("50")}

	res := SimulateTransfer(origin, dest, dec("200"), date(2024, 5, 1))
	require.NotNil(t, res)
	assert.True(t, res.NewDestinationUsed.IsZero())
	assert.True(t, dec("206").Equal(res.NewOriginUsed))
}

func TestSimulateTransfer_OverLimitIsAllowed(t *testing.T) {
	origin := &domain.Card{CreditLimit: dec("1000"), Used: dec("900"), CommissionRate: dec("0.03"), CutoffDay: 5}
	dest := &domain.Card{Used: dec("500")}

	res := SimulateTransfer(origin, dest, dec("500"), date(2024, 5, 1))
	require.NotNil(t, res)
	assert.True(t, dec("1415").Equal(res.NewOriginUsed))
}

func TestSimulateTransfer_InvalidInput(t *testing.T) {
	card := &domain.Card{Used: dec("100"), CommissionRate: dec("0.03"), CutoffDay: 5}
	now := date(2024, 5, 1)

	assert.Nil(t, SimulateTransfer(nil, card, dec("10"), now))
	assert.Nil(t, SimulateTransfer(card, nil, dec("10"), now))
	assert.Nil(t, SimulateTransfer(card, card, dec("0"), now))
	assert.Nil(t, SimulateTransfer(card, card, dec("-5"), now))
}

func TestSimulateTransfer_DoesNotMutateInputs(t *testing.T) {
	origin := &domain.Card{Used: dec("1000"), CommissionRate: dec("0.03"), CutoffDay: 17}
	dest := &domain.Card{Used: dec("500")}
	originBefore, destBefore := *origin, *dest

	first := SimulateTransfer(origin, dest, dec("200"), date(2024, 3, 10))
	second := SimulateTransfer(origin, dest, dec("200"), date(2024, 3, 10))

	assert.Equal(t, originBefore, *origin)
	assert.Equal(t, destBefore, *dest)
	assert.Equal(t, first, second)
}
