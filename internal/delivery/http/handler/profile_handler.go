package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/dto"
	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/middleware"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/response"
	"github.com/ReeceWin/FounderMatchaV2/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/founders/:id", h.GetFounder)
	r.Get("/developers", h.ListDevelopers)
	r.Get("/developers/:id", h.GetDeveloper)
	r.Get("/search/founders", h.SearchFounders)
	r.Get("/search/developers", h.SearchDevelopers)
	r.Put("/profiles/:id/work-styles", h.UpdateWorkStyles)
}

func (h *ProfileHandler) GetFounder(c fiber.Ctx) error {
	p, err := h.uc.GetFounder(c.Context(), c.Params("id"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) GetDeveloper(c fiber.Ctx) error {
	p, err := h.uc.GetDeveloper(c.Context(), c.Params("id"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) ListDevelopers(c fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid limit", nil, err)
		}
		limit = n
	}

	list, err := h.uc.ListDevelopers(c.Context(), limit, c.Query("after"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponses(list))
}

func (h *ProfileHandler) SearchFounders(c fiber.Ctx) error {
	return h.search(c, profile.RoleFounder)
}

func (h *ProfileHandler) SearchDevelopers(c fiber.Ctx) error {
	return h.search(c, profile.RoleDeveloper)
}

func (h *ProfileHandler) search(c fiber.Ctx, role profile.Role) error {
	list, err := h.uc.Search(c.Context(), role, c.Query("q"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponses(list))
}

func (h *ProfileHandler) UpdateWorkStyles(c fiber.Ctx) error {
	var req dto.WorkStylesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	styles, err := h.uc.UpdateWorkStyles(c.Context(), c.Params("id"), req.WorkStyles)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.WorkStylesResponse{
		ID:         c.Params("id"),
		WorkStyles: styles,
	})
}

func profileResponses(list []profile.Profile) []dto.ProfileResponse {
	out := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProfileResponse(p))
	}
	return out
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
