package usecase

import (
	"context"
	"time"
)

// RankCache fronts the ranked-developers endpoint. Implementations must
// degrade to a miss on any backend trouble, never an error the caller has
// to care about.
type RankCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
