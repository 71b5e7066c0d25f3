package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/middleware"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/response"
	"github.com/ReeceWin/FounderMatchaV2/internal/usecase"
)

type AnalyticsHandler struct {
	uc usecase.TraitStatsUsecase
}

func NewAnalyticsHandler(uc usecase.TraitStatsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/analytics/traits", h.TraitReport)
}

func (h *AnalyticsHandler) TraitReport(c fiber.Ctx) error {
	report, err := h.uc.Analyze(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}
