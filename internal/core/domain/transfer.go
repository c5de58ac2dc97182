package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle state of a ruleteo request.
// Requests are created Pending; nothing in this module advances them.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusInProcess RequestStatus = "In Process"
	RequestStatusCompleted RequestStatus = "Completed"
)

// TransferRequest is an immutable record of a confirmed ruleteo.
type TransferRequest struct {
	ID            uuid.UUID       `json:"id"`
	OriginID      uuid.UUID       `json:"originId"`
	DestinationID uuid.UUID       `json:"destinationId"`
	Amount        decimal.Decimal `json:"amount"`
	Commission    decimal.Decimal `json:"commission"`
	Date          time.Time       `json:"date"`
	Status        RequestStatus   `json:"status"`
}

// SimulationResult is the preview of a transfer. It has no side effects.
type SimulationResult struct {
	Commission         decimal.Decimal `json:"commission"`
	BestDate           time.Time       `json:"bestDate"`
	NewOriginUsed      decimal.Decimal `json:"newOriginUsed"`
	NewDestinationUsed decimal.Decimal `json:"newDestinationUsed"`
}

// Transaction is an entry of the auxiliary card activity log.
// Positive amounts are expenses, negative amounts are payments.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	CardID      uuid.UUID       `json:"cardId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
}
