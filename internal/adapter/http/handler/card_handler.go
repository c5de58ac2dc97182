package handler

import (
	"ruleteo/internal/adapter/http/dto"
	"ruleteo/internal/core/domain"
	"ruleteo/internal/core/ports"
	"ruleteo/pkg/apperror"
	"ruleteo/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// CardHandler handles card management and the state snapshot.
type CardHandler struct {
	cardSvc ports.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardSvc ports.CardService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc}
}

// GetState handles GET /api/v1/state.
func (h *CardHandler) GetState(c *gin.Context) {
	state := h.cardSvc.State()

	cards := make([]dto.CardResponse, 0, len(state.Cards))
	for i := range state.Cards {
		cards = append(cards, toCardResponse(&state.Cards[i]))
	}

	response.OK(c, dto.StateResponse{
		Cards:    cards,
		Requests: toRequestResponses(state.Requests),
	})
}

// AddCard handles POST /api/v1/cards.
func (h *CardHandler) AddCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := bindCard(c, &req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cardSvc.AddCard(c.Request.Context(), req.ToNewCard())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCardResponse(card))
}

// UpdateCard handles PATCH /api/v1/cards/:id.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("card id must be a UUID"))
		return
	}

	var req dto.UpdateCardRequest
	if err := bindCard(c, &req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cardSvc.UpdateCard(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	if card == nil {
		response.Error(c, apperror.ErrCardNotFound())
		return
	}

	response.OK(c, toCardResponse(card))
}

// bindCard decodes and validates a card body, trims its strings and
// validates again so a whitespace-only name cannot pass.
func bindCard(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return err
	}
	dto.SanitizeStruct(req)
	return binding.Validator.ValidateStruct(req)
}

// toCardResponse converts domain.Card to DTO.
func toCardResponse(card *domain.Card) dto.CardResponse {
	return dto.CardResponse{
		ID:                 card.ID.String(),
		Name:               card.Name,
		Bank:               string(card.Bank),
		CreditLimit:        card.CreditLimit,
		Used:               card.Used,
		Available:          card.Available(),
		UtilizationPercent: card.UtilizationPercent(),
		CutoffDay:          card.CutoffDay,
		BillingDay:         card.BillingDay,
		CommissionRate:     card.CommissionRate,
	}
}
