package scoring

import (
	"testing"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

func fintechDeveloper(id string) profile.Profile {
	return profile.Profile{
		ID:     id,
		Role:   profile.RoleDeveloper,
		Skills: append(append([]string{}, fintechPrimary...), "Rust", "GraphQL"),
		Traits: map[string]float64{
			profile.TraitOpenness:          15,
			profile.TraitConscientiousness: 15,
			profile.TraitExtraversion:      12,
			profile.TraitAgreeableness:     10,
			profile.TraitNeuroticism:       10,
		},
	}
}

func TestCalculateMatchScore_FintechFixture(t *testing.T) {
	e := testEngine(t)

	dev := fintechDeveloper("dev-1")
	dev.Traits = nil

	got := e.CalculateMatchScore(fintechFounder(), dev)

	if got.Skill != 77.0 {
		t.Fatalf("skill = %v, want 77.0", got.Skill)
	}
	if got.Personality != 0 {
		t.Fatalf("personality = %v, want 0", got.Personality)
	}
	// with no personality data, core is skill * 0.40
	if got.Core != 30.8 {
		t.Fatalf("core = %v, want 30.8", got.Core)
	}
}

func TestCalculateMatchScore_Deterministic(t *testing.T) {
	e := testEngine(t)

	founder := fintechFounder()
	founder.Traits = map[string]float64{profile.TraitOpenness: 14, profile.TraitNeuroticism: 20}
	dev := fintechDeveloper("dev-1")

	first := e.CalculateMatchScore(founder, dev)
	for i := 0; i < 10; i++ {
		if got := e.CalculateMatchScore(founder, dev); got != first {
			t.Fatalf("run %d diverged: %+v != %+v", i, got, first)
		}
	}
}

func TestCalculateMatchScore_Bounds(t *testing.T) {
	e := testEngine(t)

	pairs := []struct {
		name     string
		founder  profile.Profile
		developer profile.Profile
	}{
		{"empty", profile.Profile{}, profile.Profile{}},
		{"fintech", fintechFounder(), fintechDeveloper("d")},
		{"hostile", withTraits(profile.RoleFounder, -3, -2, -3, -2, 83), withTraits(profile.RoleDeveloper, -3, -2, -3, -2, 83)},
		{"ideal", withTraits(profile.RoleFounder, 85, 85, 85, 85, 0), withTraits(profile.RoleDeveloper, 85, 85, 85, 85, 0)},
	}

	for _, tc := range pairs {
		got := e.CalculateMatchScore(tc.founder, tc.developer)
		if got.Total < 0 || got.Total > 100 {
			t.Fatalf("%s: total %v out of [0,100]", tc.name, got.Total)
		}
		if got.Skill > 95 {
			t.Fatalf("%s: skill %v above cap", tc.name, got.Skill)
		}
		if got.Personality > 90 {
			t.Fatalf("%s: personality %v above cap", tc.name, got.Personality)
		}
		for name, v := range map[string]float64{
			"core": got.Core, "skill": got.Skill, "personality": got.Personality,
			"background": got.Background, "cultural": got.Cultural,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("%s: %s %v out of [0,100]", tc.name, name, v)
			}
		}
	}
}

func TestCalculateMatchScore_RolesAreNotInterchangeable(t *testing.T) {
	e := testEngine(t)

	founder := fintechFounder()
	founder.Traits = map[string]float64{
		profile.TraitOpenness:          15,
		profile.TraitConscientiousness: 12,
		profile.TraitExtraversion:      10,
		profile.TraitAgreeableness:     15,
		profile.TraitNeuroticism:       45,
	}
	dev := fintechDeveloper("dev-1")

	forward := e.CalculateMatchScore(founder, dev)
	reversed := e.CalculateMatchScore(dev, founder)

	if forward == reversed {
		t.Fatal("expected directional scoring to differ when arguments swap")
	}
}

func TestRankDevelopers_SortsDescendingAndFilters(t *testing.T) {
	e := testEngine(t)

	founder := fintechFounder()
	founder.Traits = map[string]float64{
		profile.TraitOpenness:          15,
		profile.TraitConscientiousness: 12,
		profile.TraitExtraversion:      10,
		profile.TraitAgreeableness:     15,
		profile.TraitNeuroticism:       10,
	}

	strong := fintechDeveloper("strong")
	weak := profile.Profile{ID: "weak", Role: profile.RoleDeveloper}

	partial := fintechDeveloper("partial")
	partial.Skills = []string{"Full-Stack", "Back-End", "Cloud"}

	ranked := e.RankDevelopers(founder, []profile.Profile{weak, partial, strong}, DefaultMinScore)

	if len(ranked) != 2 {
		t.Fatalf("expected weak developer filtered out, got %d entries", len(ranked))
	}
	if ranked[0].Developer.ID != "strong" || ranked[1].Developer.ID != "partial" {
		t.Fatalf("unexpected order: %s, %s", ranked[0].Developer.ID, ranked[1].Developer.ID)
	}
	if ranked[0].Scores.Total < ranked[1].Scores.Total {
		t.Fatal("not sorted descending")
	}
}

func TestRankDevelopers_TiesKeepInputOrder(t *testing.T) {
	e := testEngine(t)

	founder := fintechFounder()
	first := fintechDeveloper("first")
	second := fintechDeveloper("second")

	ranked := e.RankDevelopers(founder, []profile.Profile{first, second}, 10.0)

	if len(ranked) != 2 {
		t.Fatalf("expected both developers ranked, got %d", len(ranked))
	}
	if ranked[0].Scores.Total != ranked[1].Scores.Total {
		t.Fatalf("fixture should tie, got %v vs %v", ranked[0].Scores.Total, ranked[1].Scores.Total)
	}
	if ranked[0].Developer.ID != "first" || ranked[1].Developer.ID != "second" {
		t.Fatalf("tie broke input order: %s, %s", ranked[0].Developer.ID, ranked[1].Developer.ID)
	}
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	w := DefaultWeights()
	w.CoreComponent = 0.5

	if _, err := NewEngine(testCatalog(), w); err == nil {
		t.Fatal("expected weight validation error")
	}
}
