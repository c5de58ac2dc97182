package handler

import (
	"time"

	"ruleteo/internal/adapter/http/dto"
	"ruleteo/internal/core/domain"
	"ruleteo/internal/core/ports"
	"ruleteo/pkg/apperror"
	"ruleteo/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleteoHandler handles transfer previews and requests.
type RuleteoHandler struct {
	ruleteoSvc ports.RuleteoService
}

// NewRuleteoHandler creates a new RuleteoHandler.
func NewRuleteoHandler(ruleteoSvc ports.RuleteoService) *RuleteoHandler {
	return &RuleteoHandler{ruleteoSvc: ruleteoSvc}
}

// Simulate handles POST /api/v1/ruleteo/simulate. Nothing is written.
func (h *RuleteoHandler) Simulate(c *gin.Context) {
	var req dto.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if !validAmount(req.Amount) {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.ruleteoSvc.Simulate(
		c.Request.Context(),
		uuid.MustParse(req.OriginID),
		uuid.MustParse(req.DestinationID),
		req.Amount,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.Error(c, apperror.ErrCardNotFound())
		return
	}

	response.OK(c, dto.SimulationResponse{
		Commission:         result.Commission,
		BestDate:           result.BestDate.Format(dto.DateLayout),
		NewOriginUsed:      result.NewOriginUsed,
		NewDestinationUsed: result.NewDestinationUsed,
	})
}

// RequestTransfer handles POST /api/v1/ruleteo/requests.
func (h *RuleteoHandler) RequestTransfer(c *gin.Context) {
	var req dto.TransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if !validAmount(req.Amount) {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.ruleteoSvc.RequestTransfer(c.Request.Context(), ports.TransferCommand{
		OriginID:      uuid.MustParse(req.OriginID),
		DestinationID: uuid.MustParse(req.DestinationID),
		Amount:        req.Amount,
		Commission:    req.Commission,
		Date:          date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.Error(c, apperror.ErrTransferRejected())
		return
	}

	response.Created(c, toRequestResponse(result))
}

// ListRequests handles GET /api/v1/ruleteo/requests. Most recent first.
func (h *RuleteoHandler) ListRequests(c *gin.Context) {
	response.OK(c, toRequestResponses(h.ruleteoSvc.Requests()))
}

// validAmount accepts positive amounts within the money bounds.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && domain.WithinMoneyBounds(amount)
}

// toRequestResponse converts domain.TransferRequest to DTO.
func toRequestResponse(r *domain.TransferRequest) dto.TransferRequestResponse {
	return dto.TransferRequestResponse{
		ID:            r.ID.String(),
		OriginID:      r.OriginID.String(),
		DestinationID: r.DestinationID.String(),
		Amount:        r.Amount,
		Commission:    r.Commission,
		Date:          r.Date.Format(time.RFC3339),
		Status:        string(r.Status),
	}
}

func toRequestResponses(reqs []domain.TransferRequest) []dto.TransferRequestResponse {
	out := make([]dto.TransferRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, toRequestResponse(&reqs[i]))
	}
	return out
}
