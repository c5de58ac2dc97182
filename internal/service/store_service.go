package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ruleteo/internal/core/domain"
	"ruleteo/internal/core/ports"
	"ruleteo/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultStateKey is the blob key the dashboard state lives under.
const DefaultStateKey = "ruleteo.app.v1"

// ErrStoreNotOpen is the panic value raised when a Store is used before Open.
var ErrStoreNotOpen = errors.New("ruleteo store used before Open")

// Store holds the cards and transfer requests and writes the whole state to
// a BlobStore after every change. It implements ports.CardService and
// ports.RuleteoService.
//
// Mutations build the next state on a copy, persist it, and only then make
// it current, so a failed save leaves the previous state in place.
type Store struct {
	blobs ports.BlobStore
	ids   ports.IDGenerator
	clock ports.Clock
	key   string
	log   zerolog.Logger

	mu     sync.Mutex
	state  domain.AppState
	opened bool
}

// NewStore creates a Store. Call Open before using it.
func NewStore(
	blobs ports.BlobStore,
	ids ports.IDGenerator,
	clock ports.Clock,
	key string,
	log zerolog.Logger,
) *Store {
	if key == "" {
		key = DefaultStateKey
	}
	return &Store{
		blobs: blobs,
		ids:   ids,
		clock: clock,
		key:   key,
		log:   log,
	}
}

// Open loads the persisted state. Absent or unparsable content is replaced
// with the demo cards, which are saved immediately. Only errors from the
// blob store itself are returned.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.blobs.Load(ctx, s.key)
	if errors.Is(err, ports.ErrCorruptBlob) {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored state is unreadable, reseeding demo data")
		raw, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("loading state %q: %w", s.key, err)
	}

	if raw != nil {
		state, err := decodeState(raw)
		if err == nil {
			s.state = state
			s.opened = true
			s.log.Info().
				Str("key", s.key).
				Int("cards", len(state.Cards)).
				Int("requests", len(state.Requests)).
				Msg("state loaded")
			return nil
		}
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored state is corrupt, reseeding demo data")
	}

	seed := DemoState(s.ids)
	if err := s.persist(ctx, seed); err != nil {
		return err
	}
	s.state = seed
	s.opened = true
	s.log.Info().Str("key", s.key).Int("cards", len(seed.Cards)).Msg("state seeded with demo cards")
	return nil
}

// State returns a copy of the current state.
func (s *Store) State() domain.AppState {
	s.lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Requests returns the transfer requests, most recent first.
func (s *Store) Requests() []domain.TransferRequest {
	s.lock()
	defer s.mu.Unlock()
	out := make([]domain.TransferRequest, len(s.state.Requests))
	copy(out, s.state.Requests)
	return out
}

// AddCard assigns a new id to card, appends it after the existing cards and
// persists the state.
func (s *Store) AddCard(ctx context.Context, card domain.NewCard) (*domain.Card, error) {
	s.lock()
	defer s.mu.Unlock()

	created := card.WithID(s.ids.NewID())
	created.Used = domain.FloorZero(created.Used)

	next := s.state.Clone()
	next.Cards = append(next.Cards, created)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("card_id", created.ID.String()).
		Str("bank", string(created.Bank)).
		Msg("card added")
	return &created, nil
}

// UpdateCard merges patch into the card with the given id. An unknown id is
// ignored: it returns nil, nil and nothing is written.
func (s *Store) UpdateCard(ctx context.Context, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	s.lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	card := next.FindCard(id)
	if card == nil {
		s.log.Debug().Str("card_id", id.String()).Msg("update for unknown card ignored")
		return nil, nil
	}
	patch.Apply(card)
	card.Used = domain.FloorZero(card.Used)
	updated := *card

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Simulate resolves both cards in the current state and previews the
// transfer. It returns nil when a card is unknown or amount <= 0.
func (s *Store) Simulate(_ context.Context, originID, destinationID uuid.UUID, amount decimal.Decimal) (*domain.SimulationResult, error) {
	s.lock()
	defer s.mu.Unlock()

	return SimulateTransfer(
		s.state.FindCard(originID),
		s.state.FindCard(destinationID),
		amount,
		s.clock.Now(),
	), nil
}

// RequestTransfer commits a transfer: it records a Pending request at the
// head of the request list and updates both balances with the same
// arithmetic as the preview, in a single state replacement.
//
// It returns nil, nil without touching state when either card is unknown or
// the amount is not positive.
func (s *Store) RequestTransfer(ctx context.Context, cmd ports.TransferCommand) (*domain.TransferRequest, error) {
	s.lock()
	defer s.mu.Unlock()

	if !cmd.Amount.IsPositive() {
		return nil, nil
	}

	next := s.state.Clone()
	origin := next.FindCard(cmd.OriginID)
	dest := next.FindCard(cmd.DestinationID)
	if origin == nil || dest == nil {
		return nil, nil
	}

	commission := domain.Commission(cmd.Amount, origin.CommissionRate)
	if cmd.Commission != nil {
		commission = cmd.Commission.Round(domain.CommissionPlaces)
	}
	date := cmd.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	// Origin is written last; on a self-transfer it wins with amount plus commission.
	newOrigin, newDest := domain.ApplyTransfer(origin.Used, dest.Used, cmd.Amount, commission)
	dest.Used = newDest
	origin.Used = newOrigin

	req := domain.TransferRequest{
		ID:            s.ids.NewID(),
		OriginID:      cmd.OriginID,
		DestinationID: cmd.DestinationID,
		Amount:        cmd.Amount,
		Commission:    commission,
		Date:          date,
		Status:        domain.RequestStatusPending,
	}
	next.Requests = append([]domain.TransferRequest{req}, next.Requests...)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", req.ID.String()).
		Str("origin_id", req.OriginID.String()).
		Str("destination_id", req.DestinationID.String()).
		Str("amount", req.Amount.String()).
		Str("commission", req.Commission.String()).
		Msg("ruleteo requested")
	return &req, nil
}

// lock acquires the mutex and panics if the store is not usable.
func (s *Store) lock() {
	if s == nil {
		panic(ErrStoreNotOpen)
	}
	s.mu.Lock()
	if !s.opened {
		s.mu.Unlock()
		panic(ErrStoreNotOpen)
	}
}

// commit persists next and makes it the current state. Callers hold mu.
func (s *Store) commit(ctx context.Context, next domain.AppState) error {
	if err := s.persist(ctx, next); err != nil {
		return apperror.ErrStorage(err)
	}
	s.state = next
	return nil
}

func (s *Store) persist(ctx context.Context, state domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := s.blobs.Save(ctx, s.key, raw); err != nil {
		return fmt.Errorf("saving state %q: %w", s.key, err)
	}
	return nil
}

func decodeState(raw []byte) (domain.AppState, error) {
	var decoded *domain.AppState
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return domain.AppState{}, fmt.Errorf("decoding state: %w", err)
	}
	if decoded == nil {
		return domain.AppState{}, errors.New("decoding state: null document")
	}
	// Clone normalises missing collections to empty slices.
	return decoded.Clone(), nil
}
