package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ReeceWin/FounderMatchaV2/internal/delivery/http/handler"
	"github.com/ReeceWin/FounderMatchaV2/internal/usecase"
)

type Deps struct {
	Profiles   usecase.ProfileUsecase
	Matcher    usecase.MatchUsecase
	Lifecycle  usecase.LifecycleUsecase
	TraitStats usecase.TraitStatsUsecase
	MinScore   float64
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	handler.NewProfileHandler(deps.Profiles).RegisterRoutes(r)
	handler.NewMatchHandler(deps.Matcher, deps.MinScore).RegisterRoutes(r)
	handler.NewLifecycleHandler(deps.Lifecycle).RegisterRoutes(r)
	handler.NewAnalyticsHandler(deps.TraitStats).RegisterRoutes(r)
}
