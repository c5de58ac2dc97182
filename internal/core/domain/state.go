package domain

import "github.com/google/uuid"

// AppState is everything the dashboard persists, stored as a single blob.
type AppState struct {
	Cards        []Card            `json:"cards"`
	Requests     []TransferRequest `json:"requests"` // most recent first
	Transactions []Transaction     `json:"transactions"`
}

// Clone returns a copy whose slices can be modified without affecting s.
func (s AppState) Clone() AppState {
	out := AppState{
		Cards:        make([]Card, len(s.Cards)),
		Requests:     make([]TransferRequest, len(s.Requests)),
		Transactions: make([]Transaction, len(s.Transactions)),
	}
	copy(out.Cards, s.Cards)
	copy(out.Requests, s.Requests)
	copy(out.Transactions, s.Transactions)
	return out
}

// FindCard returns a pointer into s.Cards for id, or nil.
func (s *AppState) FindCard(id uuid.UUID) *Card {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return &s.Cards[i]
		}
	}
	return nil
}
