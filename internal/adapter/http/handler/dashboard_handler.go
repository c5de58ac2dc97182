package handler

import (
	"ruleteo/internal/adapter/http/dto"
	"ruleteo/internal/core/ports"
	"ruleteo/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the dashboard overview.
type DashboardHandler struct {
	dashboardSvc ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardSvc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Overview handles GET /api/v1/dashboard.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ov, err := h.dashboardSvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	cards := make([]dto.CardResponse, 0, len(ov.Cards))
	for i := range ov.Cards {
		cards = append(cards, toCardResponse(&ov.Cards[i].Card))
	}

	upcoming := make([]dto.UpcomingDateResponse, 0, len(ov.Upcoming))
	for _, u := range ov.Upcoming {
		upcoming = append(upcoming, dto.UpcomingDateResponse{
			Kind:     string(u.Kind),
			CardID:   u.CardID.String(),
			CardName: u.CardName,
			Date:     u.Date.Format(dto.DateLayout),
		})
	}

	response.OK(c, dto.OverviewResponse{
		TotalLimit:         ov.TotalLimit,
		TotalUsed:          ov.TotalUsed,
		TotalAvailable:     ov.TotalAvailable,
		UtilizationPercent: ov.UtilizationPercent,
		Cards:              cards,
		Upcoming:           upcoming,
		Requests:           toRequestResponses(ov.Requests),
	})
}
