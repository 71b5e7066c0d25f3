package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ReeceWin/FounderMatchaV2/internal/config"
	"github.com/ReeceWin/FounderMatchaV2/internal/database"
	"github.com/ReeceWin/FounderMatchaV2/internal/database/migration"
	dbpostgres "github.com/ReeceWin/FounderMatchaV2/internal/database/postgres"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/scoring"
	"github.com/ReeceWin/FounderMatchaV2/internal/infrastructure/cache"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/retry"
	"github.com/ReeceWin/FounderMatchaV2/internal/repository"
	"github.com/ReeceWin/FounderMatchaV2/internal/usecase"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis

	Profiles   usecase.ProfileUsecase
	Matcher    usecase.MatchUsecase
	Lifecycle  usecase.LifecycleUsecase
	TraitStats usecase.TraitStatsUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	// A broken or missing catalog disables field inference but never the
	// service: scoring degrades the same way an empty catalog would.
	catalog, err := scoring.LoadCatalog(cfg.Matching.CatalogPath)
	if err != nil {
		logger.Warn("industry catalog unavailable, field inference disabled",
			zap.String("path", cfg.Matching.CatalogPath), zap.Error(err))
		catalog = scoring.EmptyCatalog()
	}

	engine, err := scoring.NewEngine(catalog, scoring.DefaultWeights())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	policy := retry.DefaultPolicy()
	if cfg.Matching.RetryMaxAttempts > 0 {
		policy.MaxAttempts = cfg.Matching.RetryMaxAttempts
	}

	profileRepo := repository.NewPostgresProfileRepository(db, policy)
	matchRepo := repository.NewPostgresMatchRepository(db, policy)

	matcher := usecase.NewMatchUsecase(profileRepo, engine, redisCache, cfg.Redis.TTL, cfg.Matching.RankParallelism)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Cache:      redisCache,
		Profiles:   usecase.NewProfileUsecase(profileRepo),
		Matcher:    matcher,
		Lifecycle:  usecase.NewLifecycleUsecase(profileRepo, matchRepo, matcher),
		TraitStats: usecase.NewTraitStatsUsecase(profileRepo),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
