package scoring

import (
	"testing"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

func withTraits(role profile.Role, o, c, e, a, n float64) profile.Profile {
	return profile.Profile{
		Role: role,
		Traits: map[string]float64{
			profile.TraitOpenness:          o,
			profile.TraitConscientiousness: c,
			profile.TraitExtraversion:      e,
			profile.TraitAgreeableness:     a,
			profile.TraitNeuroticism:       n,
		},
	}
}

func TestPersonalityScore_EmptyTraitsIsZero(t *testing.T) {
	e := testEngine(t)

	founder := withTraits(profile.RoleFounder, 15, 12, 10, 15, 10)
	dev := profile.Profile{Role: profile.RoleDeveloper}

	if got := e.personalityScore(founder, dev); got != 0 {
		t.Fatalf("empty developer traits: got %v, want 0", got)
	}
	if got := e.personalityScore(dev, founder); got != 0 {
		t.Fatalf("empty founder traits: got %v, want 0", got)
	}
}

func TestPersonalityScore_KnownFixture(t *testing.T) {
	e := testEngine(t)

	founder := withTraits(profile.RoleFounder, 15, 12, 10, 15, 10)
	dev := withTraits(profile.RoleDeveloper, 15, 15, 12, 10, 10)

	// openness (30/50)*.20 + conscientiousness (17/27)*.25 +
	// extraversion (1-2/28)*.15 + agreeableness (15/25)*.20 +
	// neuroticism (1-10/50)*.20
	want := 0.6*0.20 + (17.0/27.0)*0.25 + (1-2.0/28.0)*0.15 + 0.6*0.20 + 0.8*0.20
	approx(t, e.personalityScore(founder, dev), want, 1e-9)
}

func TestPersonalityScore_LowConscientiousnessDiscount(t *testing.T) {
	e := testEngine(t)

	founder := withTraits(profile.RoleFounder, 15, 12, 10, 15, 10)
	steady := withTraits(profile.RoleDeveloper, 15, 12, 10, 15, 10)
	flaky := withTraits(profile.RoleDeveloper, 15, 8, 10, 15, 10)

	if e.personalityScore(founder, flaky) >= e.personalityScore(founder, steady) {
		t.Fatal("expected below-average conscientiousness to score lower")
	}
}

func TestPersonalityScore_NeuroticismTiers(t *testing.T) {
	e := testEngine(t)

	founder := withTraits(profile.RoleFounder, 15, 12, 10, 15, 10)
	low := e.personalityScore(founder, withTraits(profile.RoleDeveloper, 15, 15, 12, 10, 10))
	mid := e.personalityScore(founder, withTraits(profile.RoleDeveloper, 15, 15, 12, 10, 35))
	high := e.personalityScore(founder, withTraits(profile.RoleDeveloper, 15, 15, 12, 10, 45))

	if !(low > mid && mid > high) {
		t.Fatalf("expected tiered decline, got low=%v mid=%v high=%v", low, mid, high)
	}

	// The mid and high tiers are fixed values, so the gap between them is
	// exactly (0.5-0.3)*weight.
	approx(t, mid-high, 0.2*0.20, 1e-9)
}

func TestPersonalityScore_RedFlagsCompoundMultiplicatively(t *testing.T) {
	e := testEngine(t)

	founder := withTraits(profile.RoleFounder, 3, 12, 10, -1, 10)
	dev := withTraits(profile.RoleDeveloper, 2, 2, 10, -1, 55)

	// Base: openness (5/50), conscientiousness (4/27 then *0.7), extraversion
	// (gap 0 -> 1), agreeableness (clamped to 0), neuroticism (>40 tier 0.3).
	base := (5.0/50.0)*0.20 + (4.0/27.0)*0.7*0.25 + 1.0*0.15 + 0.0*0.20 + 0.3*0.20

	// All four flags trip: 0.6 * 0.7 * 0.8 * 0.8 of the base score.
	want := base * 0.6 * 0.7 * 0.8 * 0.8

	approx(t, e.personalityScore(founder, dev), want, 1e-9)
}

func TestPersonalityScore_CappedAt90(t *testing.T) {
	e := testEngine(t)

	founder := withTraits(profile.RoleFounder, 25, 25, 10, 25, 0)
	dev := withTraits(profile.RoleDeveloper, 25, 25, 10, 25, 0)

	approx(t, e.personalityScore(founder, dev), 0.90, 1e-9)
}
