package ports

import (
	"context"
	"time"

	"ruleteo/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDGenerator hands out identifiers for new cards and requests.
type IDGenerator interface {
	NewID() uuid.UUID
}

// Clock supplies the current time. "now" is read once per operation.
type Clock interface {
	Now() time.Time
}

// --- Service Ports (Business Logic) ---

// CardService manages the card collection.
type CardService interface {
	State() domain.AppState
	AddCard(ctx context.Context, card domain.NewCard) (*domain.Card, error)
	// UpdateCard returns nil, nil when no card has the given id.
	UpdateCard(ctx context.Context, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error)
}

// RuleteoService previews and commits balance transfers between cards.
type RuleteoService interface {
	// Simulate returns nil when either card is unknown or amount <= 0.
	Simulate(ctx context.Context, originID, destinationID uuid.UUID, amount decimal.Decimal) (*domain.SimulationResult, error)
	// RequestTransfer returns nil, nil and leaves state untouched when
	// either card is unknown or amount <= 0.
	RequestTransfer(ctx context.Context, cmd TransferCommand) (*domain.TransferRequest, error)
	Requests() []domain.TransferRequest
}

// TransferCommand holds validated input for committing a transfer.
type TransferCommand struct {
	OriginID      uuid.UUID
	DestinationID uuid.UUID
	Amount        decimal.Decimal
	Commission    *decimal.Decimal // nil = origin rate applied to Amount
	Date          time.Time        // zero = now
}

// DashboardService builds the read-only dashboard view.
type DashboardService interface {
	Overview(ctx context.Context) (*Overview, error)
}

// Overview aggregates every card for the dashboard.
type Overview struct {
	TotalLimit         decimal.Decimal
	TotalUsed          decimal.Decimal
	TotalAvailable     decimal.Decimal
	UtilizationPercent int64
	Cards              []CardSummary
	Upcoming           []UpcomingDate
	Requests           []domain.TransferRequest
}

// CardSummary is a card with its derived figures.
type CardSummary struct {
	Card               domain.Card
	Available          decimal.Decimal
	UtilizationPercent int64
}

// DateKind distinguishes statement cutoffs from payment due dates.
type DateKind string

const (
	DateKindCutoff DateKind = "cutoff"
	DateKindDue    DateKind = "due"
)

// UpcomingDate is the next occurrence of a card's cutoff or due day.
type UpcomingDate struct {
	Kind     DateKind
	CardID   uuid.UUID
	CardName string
	Date     time.Time
}
