package scoring

import (
	"math"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

// personalityScore compares two Big Five profiles with trait-specific rules
// anchored on the observed score distributions (roughly -3..25 per trait,
// neuroticism up to ~83), rather than a uniform distance metric. Returns 0
// when either side has no personality data.
func (e *Engine) personalityScore(founder, developer profile.Profile) float64 {
	if !founder.HasTraits() || !developer.HasTraits() {
		return 0
	}

	fOpen := founder.Trait(profile.TraitOpenness)
	dOpen := developer.Trait(profile.TraitOpenness)
	dCons := developer.Trait(profile.TraitConscientiousness)
	fExtra := founder.Trait(profile.TraitExtraversion)
	dExtra := developer.Trait(profile.TraitExtraversion)
	fAgree := founder.Trait(profile.TraitAgreeableness)
	dAgree := developer.Trait(profile.TraitAgreeableness)
	dNeuro := developer.Trait(profile.TraitNeuroticism)

	// Openness: reward when the pair is collectively curious.
	openness := clamp01((fOpen + dOpen) / 50)

	// Conscientiousness: the developer's own level is what matters here.
	conscientiousness := clamp01((dCons + 2) / 27)
	if dCons < 10 {
		conscientiousness *= 0.7
	}

	// Extraversion: small gaps beat identical extremes.
	extraversion := clamp01(1 - math.Abs(fExtra-dExtra)/28)

	// Agreeableness: one agreeable side is enough to keep friction down.
	agreeableness := clamp01(math.Max(fAgree, dAgree) / 25)

	// Neuroticism: tiered, heavily discounting scores far above the mean.
	var neuroticism float64
	switch {
	case dNeuro > 40:
		neuroticism = 0.3
	case dNeuro > 30:
		neuroticism = 0.5
	default:
		neuroticism = clamp01(1 - dNeuro/50)
	}

	base := openness*e.weights.Openness +
		conscientiousness*e.weights.Conscientiousness +
		extraversion*e.weights.Extraversion +
		agreeableness*e.weights.Agreeableness +
		neuroticism*e.weights.Neuroticism

	// Red flags compound multiplicatively: two independent concerns discount
	// more than either alone.
	redFlags := 1.0
	if dNeuro > 50 {
		redFlags *= e.weights.HighNeuroticismFlag
	}
	if dCons < 5 {
		redFlags *= e.weights.LowConscientiousnessFlag
	}
	if fAgree < 0 && dAgree < 0 {
		redFlags *= e.weights.LowAgreeablenessFlag
	}
	if fOpen < 5 && dOpen < 5 {
		redFlags *= e.weights.LowOpennessFlag
	}

	final := base * redFlags
	if final > e.weights.PersonalityCap {
		final = e.weights.PersonalityCap
	}
	return final
}
