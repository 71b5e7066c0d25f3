package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/scoring"
	"github.com/ReeceWin/FounderMatchaV2/internal/repository"
)

type MatchUsecase interface {
	CalculateMatch(ctx context.Context, founderID, developerID string) (scoring.Breakdown, error)
	RankDevelopers(ctx context.Context, founderID string, minScore float64) ([]scoring.RankedDeveloper, error)
}

type Match struct {
	profiles    repository.ProfileRepository
	engine      *scoring.Engine
	cache       RankCache
	cacheTTL    time.Duration
	parallelism int
}

func NewMatchUsecase(profiles repository.ProfileRepository, engine *scoring.Engine, cache RankCache, cacheTTL time.Duration, parallelism int) *Match {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Match{
		profiles:    profiles,
		engine:      engine,
		cache:       cache,
		cacheTTL:    cacheTTL,
		parallelism: parallelism,
	}
}

func (u *Match) CalculateMatch(ctx context.Context, founderID, developerID string) (scoring.Breakdown, error) {
	founder, err := u.profileWithRole(ctx, founderID, profile.RoleFounder)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	developer, err := u.profileWithRole(ctx, developerID, profile.RoleDeveloper)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	return u.engine.CalculateMatchScore(founder, developer), nil
}

func (u *Match) RankDevelopers(ctx context.Context, founderID string, minScore float64) ([]scoring.RankedDeveloper, error) {
	founderID = strings.TrimSpace(founderID)
	if founderID == "" {
		return nil, ErrInvalidInput
	}

	key := DevelopersRankCacheKey(founderID, minScore)
	if u.cache != nil {
		var cached []scoring.RankedDeveloper
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	founder, err := u.profileWithRole(ctx, founderID, profile.RoleFounder)
	if err != nil {
		return nil, err
	}

	developers, err := u.listAllDevelopers(ctx)
	if err != nil {
		return nil, err
	}

	// Score in parallel; the engine is stateless so developers shard
	// cleanly across goroutines.
	ranked := make([]scoring.RankedDeveloper, len(developers))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(u.parallelism)
	for i, dev := range developers {
		g.Go(func() error {
			ranked[i] = scoring.RankedDeveloper{
				Developer: dev,
				Scores:    u.engine.CalculateMatchScore(founder, dev),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	out := make([]scoring.RankedDeveloper, 0, len(ranked))
	for _, r := range ranked {
		if r.Scores.Total >= minScore {
			out = append(out, r)
		}
	}
	scoring.SortRanked(out)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, u.cacheTTL)
	}
	return out, nil
}

func (u *Match) profileWithRole(ctx context.Context, id string, role profile.Role) (profile.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profile.Profile{}, ErrInvalidInput
	}
	p, err := u.profiles.GetByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return profile.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return profile.Profile{}, ErrInternal
	}
	if p.Role != role {
		return profile.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *Match) listAllDevelopers(ctx context.Context) ([]profile.Profile, error) {
	const pageSize = 500

	var (
		out     []profile.Profile
		afterID string
	)
	for {
		page, err := u.profiles.ListByRole(ctx, profile.RoleDeveloper, pageSize, afterID)
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, page...)
		if len(page) < pageSize {
			return out, nil
		}
		afterID = page[len(page)-1].ID
	}
}
