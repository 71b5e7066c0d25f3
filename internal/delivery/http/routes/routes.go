package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ReeceWin/FounderMatchaV2/internal/database"
	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/handler"
	v1 "github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/routes/v1"
)

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Deps
}

func NewRegistry(db database.DB, cache handler.Pinger, deps v1.Deps) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(db, cache),
		deps:   deps,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
