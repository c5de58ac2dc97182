package service

import (
	"ruleteo/internal/core/domain"
	"ruleteo/internal/core/ports"

	"github.com/shopspring/decimal"
)

// demoCards are the cards a fresh or unreadable store starts with.
var demoCards = []domain.NewCard{
	{
		Name:           "Blue Rewards",
		Bank:           domain.BankBBVA,
		CreditLimit:    decimal.NewFromInt(5000),
		Used:           decimal.NewFromInt(1850),
		CutoffDay:      17,
		BillingDay:     3,
		CommissionRate: decimal.RequireFromString("0.035"),
	},
	{
		Name:           "Orange Plus",
		Bank:           domain.BankSantander,
		CreditLimit:    decimal.NewFromInt(8000),
		Used:           decimal.NewFromInt(4200),
		CutoffDay:      10,
		BillingDay:     28,
		CommissionRate: decimal.RequireFromString("0.028"),
	},
	{
		Name:           "Green CashBack",
		Bank:           domain.BankHSBC,
		CreditLimit:    decimal.NewFromInt(12000),
		Used:           decimal.NewFromInt(2600),
		CutoffDay:      22,
		BillingDay:     8,
		CommissionRate: decimal.RequireFromString("0.03"),
	},
}

// DemoState builds the seed state with freshly generated card ids.
func DemoState(ids ports.IDGenerator) domain.AppState {
	state := domain.AppState{
		Cards:        make([]domain.Card, 0, len(demoCards)),
		Requests:     []domain.TransferRequest{},
		Transactions: []domain.Transaction{},
	}
	for _, c := range demoCards {
		state.Cards = append(state.Cards, c.WithID(ids.NewID()))
	}
	return state
}
