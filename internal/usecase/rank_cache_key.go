package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type rankCacheKeyInput struct {
	FounderID string  `json:"founder_id"`
	MinScore  float64 `json:"min_score"`
}

// DevelopersRankCacheKey is stable for equivalent requests regardless of
// whitespace or casing in the founder id.
func DevelopersRankCacheKey(founderID string, minScore float64) string {
	in := rankCacheKeyInput{
		FounderID: strings.ToLower(strings.TrimSpace(founderID)),
		MinScore:  minScore,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "rank:developers:" + hex.EncodeToString(sum[:])
}
