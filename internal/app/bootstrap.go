package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/ReeceWin/FounderMatchaV2/internal/config"
	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/middleware"
	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/routes"
	v1 "github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/routes/v1"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := routes.NewRegistry(c.DB, c.Cache, v1.Deps{
		Profiles:   c.Profiles,
		Matcher:    c.Matcher,
		Lifecycle:  c.Lifecycle,
		TraitStats: c.TraitStats,
		MinScore:   cfg.Matching.MinScore,
	})
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
