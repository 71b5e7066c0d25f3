package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/dto"
	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/middleware"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/scoring"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/response"
	"github.com/ReeceWin/FounderMatchaV2/internal/usecase"
)

type MatchHandler struct {
	uc       usecase.MatchUsecase
	minScore float64
}

func NewMatchHandler(uc usecase.MatchUsecase, minScore float64) *MatchHandler {
	if minScore <= 0 {
		minScore = scoring.DefaultMinScore
	}
	return &MatchHandler{uc: uc, minScore: minScore}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.CalculateMatch)
	r.Get("/profiles/ranked", h.RankDevelopers)
}

func (h *MatchHandler) CalculateMatch(c fiber.Ctx) error {
	var req dto.CalculateMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	scores, err := h.uc.CalculateMatch(c.Context(), req.FounderID, req.DeveloperID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CalculateMatchResponse{
		FounderID:   req.FounderID,
		DeveloperID: req.DeveloperID,
		Scores:      dto.NewScoresResponse(scores),
	})
}

func (h *MatchHandler) RankDevelopers(c fiber.Ctx) error {
	founderID := c.Query("founder_id")

	minScore := h.minScore
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid min_score", nil, err)
		}
		minScore = v
	}

	ranked, err := h.uc.RankDevelopers(c.Context(), founderID, minScore)
	if err != nil {
		return mapMatchError(err)
	}

	results := make([]dto.RankedDeveloperResponse, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, dto.RankedDeveloperResponse{
			Developer: dto.NewProfileResponse(r.Developer),
			Scores:    dto.NewScoresResponse(r.Scores),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RankedDevelopersResponse{
		FounderID: founderID,
		MinScore:  minScore,
		Results:   results,
	})
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
