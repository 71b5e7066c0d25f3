package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

// DefaultMinScore is the ranking cutoff applied when the caller passes none.
const DefaultMinScore = 30.0

// Breakdown is the engine's output: the total compatibility score and its
// explainable components, each scaled to [0,100] and rounded to two decimals.
type Breakdown struct {
	Total       float64 `json:"total_score"`
	Core        float64 `json:"core_score"`
	Skill       float64 `json:"skill_score"`
	Personality float64 `json:"personality_score"`
	Background  float64 `json:"background_score"`
	Cultural    float64 `json:"cultural_score"`
}

// Engine combines the four matchers into one ranked score. It is pure and
// stateless: the same two profiles and the same weights/catalog always yield
// bit-identical output, and concurrent calls need no synchronization.
type Engine struct {
	catalog *IndustryCatalog
	weights Weights
}

func NewEngine(catalog *IndustryCatalog, weights Weights) (*Engine, error) {
	if catalog == nil {
		catalog = EmptyCatalog()
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("scoring weights: %w", err)
	}
	return &Engine{catalog: catalog, weights: weights}, nil
}

// CalculateMatchScore rates the developer against the founder. The scoring is
// directional: swapping the two arguments is a different question and yields a
// different answer.
func (e *Engine) CalculateMatchScore(founder, developer profile.Profile) Breakdown {
	skill := e.skillScore(founder, developer)
	personality := e.personalityScore(founder, developer)
	core := skill*e.weights.SkillCore + personality*e.weights.PersonalityCore

	background := e.backgroundScore(founder, developer)
	cultural := e.culturalScore(founder, developer)

	total := core*e.weights.CoreComponent +
		background*e.weights.BackgroundComponent +
		cultural*e.weights.CulturalComponent

	return Breakdown{
		Total:       scale(total),
		Core:        scale(core),
		Skill:       scale(skill),
		Personality: scale(personality),
		Background:  scale(background),
		Cultural:    scale(cultural),
	}
}

// RankedDeveloper pairs a candidate with their score breakdown.
type RankedDeveloper struct {
	Developer profile.Profile `json:"developer"`
	Scores    Breakdown       `json:"scores"`
}

// RankDevelopers scores every developer against the founder, drops entries
// below minScore and sorts the rest descending by total. The sort is stable:
// equal totals keep their input order, so downstream displays stay
// deterministic.
func (e *Engine) RankDevelopers(founder profile.Profile, developers []profile.Profile, minScore float64) []RankedDeveloper {
	ranked := make([]RankedDeveloper, 0, len(developers))
	for _, dev := range developers {
		scores := e.CalculateMatchScore(founder, dev)
		if scores.Total < minScore {
			continue
		}
		ranked = append(ranked, RankedDeveloper{Developer: dev, Scores: scores})
	}
	SortRanked(ranked)
	return ranked
}

// SortRanked orders a ranked slice descending by total score, stably.
func SortRanked(ranked []RankedDeveloper) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Total > ranked[j].Scores.Total
	})
}

// scale converts a unit score to the 0-100 range, rounded to two decimals.
func scale(v float64) float64 {
	return math.Round(v*100*100) / 100
}
