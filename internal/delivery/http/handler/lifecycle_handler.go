package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/dto"
	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/middleware"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/response"
	"github.com/ReeceWin/FounderMatchaV2/internal/usecase"
)

type LifecycleHandler struct {
	uc usecase.LifecycleUsecase
}

func NewLifecycleHandler(uc usecase.LifecycleUsecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

func (h *LifecycleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches")
	grp.Post("/", h.CreateMatch)
	grp.Get("/history", h.GetHistory)
	grp.Patch("/:match_id/status", h.UpdateStatus)
}

func (h *LifecycleHandler) CreateMatch(c fiber.Ctx) error {
	var req dto.CreateMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	rec, err := h.uc.CreateMatch(c.Context(), req.FounderID, req.DeveloperID, req.InitiatedBy)
	if err != nil {
		return mapLifecycleError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewMatchRecordResponse(rec))
}

func (h *LifecycleHandler) UpdateStatus(c fiber.Ctx) error {
	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid match id", nil, err)
	}

	var req dto.UpdateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	rec, err := h.uc.UpdateStatus(c.Context(), matchID, req.Status, req.UpdatedBy)
	if err != nil {
		return mapLifecycleError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchRecordResponse(rec))
}

func (h *LifecycleHandler) GetHistory(c fiber.Ctx) error {
	recs, err := h.uc.GetHistory(c.Context(), c.Query("user_id"), c.Query("role"))
	if err != nil {
		return mapLifecycleError(err)
	}

	out := make([]dto.MatchRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.NewMatchRecordResponse(rec))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapLifecycleError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "profile not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "match not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
