package dto

import (
	"ruleteo/internal/core/domain"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateCardRequest is the request body for adding a card.
type CreateCardRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=60"`
	Bank           domain.Bank     `json:"bank" binding:"required,bank"`
	CreditLimit    decimal.Decimal `json:"creditLimit" binding:"gte=0"`
	Used           decimal.Decimal `json:"used" binding:"gte=0"`
	CutoffDay      int             `json:"cutoffDay" binding:"required,min=1,max=31"`
	BillingDay     int             `json:"billingDay" binding:"required,min=1,max=31"`
	CommissionRate decimal.Decimal `json:"commissionRate" binding:"gte=0,lte=1"`
}

// ToNewCard converts the request into the domain input.
func (r CreateCardRequest) ToNewCard() domain.NewCard {
	return domain.NewCard{
		Name:           r.Name,
		Bank:           r.Bank,
		CreditLimit:    r.CreditLimit,
		Used:           r.Used,
		CutoffDay:      r.CutoffDay,
		BillingDay:     r.BillingDay,
		CommissionRate: r.CommissionRate,
	}
}

// UpdateCardRequest is the request body for a partial card update.
// Omitted fields keep their current value.
type UpdateCardRequest struct {
	Name           *string          `json:"name,omitempty" binding:"omitempty,min=1,max=60"`
	Bank           *domain.Bank     `json:"bank,omitempty" binding:"omitempty,bank"`
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty" binding:"omitempty,gte=0"`
	Used           *decimal.Decimal `json:"used,omitempty" binding:"omitempty,gte=0"`
	CutoffDay      *int             `json:"cutoffDay,omitempty" binding:"omitempty,min=1,max=31"`
	BillingDay     *int             `json:"billingDay,omitempty" binding:"omitempty,min=1,max=31"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCardRequest) ToPatch() domain.CardPatch {
	return domain.CardPatch{
		Name:           r.Name,
		Bank:           r.Bank,
		CreditLimit:    r.CreditLimit,
		Used:           r.Used,
		CutoffDay:      r.CutoffDay,
		BillingDay:     r.BillingDay,
		CommissionRate: r.CommissionRate,
	}
}

// SimulateRequest is the request body for a transfer preview.
// Amount is checked by the handler so a non-positive value maps to RUL_001.
type SimulateRequest struct {
	OriginID      string          `json:"originId" binding:"required,uuid"`
	DestinationID string          `json:"destinationId" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransferRequestBody is the request body for committing a transfer.
// Commission and Date are normally echoed back from the preview; when
// omitted the server recomputes the commission and uses today.
type TransferRequestBody struct {
	OriginID      string           `json:"originId" binding:"required,uuid"`
	DestinationID string           `json:"destinationId" binding:"required,uuid"`
	Amount        decimal.Decimal  `json:"amount"`
	Commission    *decimal.Decimal `json:"commission,omitempty" binding:"omitempty,gte=0"`
	Date          string           `json:"date,omitempty"` // YYYY-MM-DD or RFC 3339
}

// CardResponse is a card with its derived figures.
type CardResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Bank               string          `json:"bank"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	Used               decimal.Decimal `json:"used"`
	Available          decimal.Decimal `json:"available"`
	UtilizationPercent int64           `json:"utilizationPercent"`
	CutoffDay          int             `json:"cutoffDay"`
	BillingDay         int             `json:"billingDay"`
	CommissionRate     decimal.Decimal `json:"commissionRate"`
}

// TransferRequestResponse is a recorded transfer request.
type TransferRequestResponse struct {
	ID            string          `json:"id"`
	OriginID      string          `json:"originId"`
	DestinationID string          `json:"destinationId"`
	Amount        decimal.Decimal `json:"amount"`
	Commission    decimal.Decimal `json:"commission"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
}

// SimulationResponse is the preview of a transfer.
type SimulationResponse struct {
	Commission         decimal.Decimal `json:"commission"`
	BestDate           string          `json:"bestDate"`
	NewOriginUsed      decimal.Decimal `json:"newOriginUsed"`
	NewDestinationUsed decimal.Decimal `json:"newDestinationUsed"`
}

// StateResponse is the full snapshot of cards and requests.
type StateResponse struct {
	Cards    []CardResponse            `json:"cards"`
	Requests []TransferRequestResponse `json:"requests"`
}

// UpcomingDateResponse is one entry of the dashboard calendar.
type UpcomingDateResponse struct {
	Kind     string `json:"kind"`
	CardID   string `json:"cardId"`
	CardName string `json:"cardName"`
	Date     string `json:"date"`
}

// OverviewResponse is the response for the dashboard.
type OverviewResponse struct {
	TotalLimit         decimal.Decimal           `json:"totalLimit"`
	TotalUsed          decimal.Decimal           `json:"totalUsed"`
	TotalAvailable     decimal.Decimal           `json:"totalAvailable"`
	UtilizationPercent int64                     `json:"utilizationPercent"`
	Cards              []CardResponse            `json:"cards"`
	Upcoming           []UpcomingDateResponse    `json:"upcoming"`
	Requests           []TransferRequestResponse `json:"requests"`
}
