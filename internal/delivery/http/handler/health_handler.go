package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/ReeceWin/FounderMatchaV2/internal/database"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache Pinger
}

func NewHealthHandler(db database.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := fiber.Map{"database": "up", "cache": "up"}
	healthy := true

	if h.db == nil || h.db.Ping(ctx) != nil {
		out["database"] = "down"
		healthy = false
	}
	// The cache is optional; report it but never fail the check on it.
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		out["cache"] = "down"
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
