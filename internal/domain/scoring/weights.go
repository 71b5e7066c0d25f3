package scoring

import (
	"fmt"
	"math"
)

// Weights collects every tunable constant of the scoring model in one place
// so the model can be retuned without touching engine code. The numbers are
// not sacred; only the way they compose is.
type Weights struct {
	// Top-level component blend.
	CoreComponent       float64
	BackgroundComponent float64
	CulturalComponent   float64

	// Core blend of skills vs personality.
	SkillCore       float64
	PersonalityCore float64

	// Skill coverage.
	PrimarySkill       float64
	SecondarySkill     float64
	MinPrimaryCoverage float64
	CoveragePenalty    float64
	TechBonusPerSkill  float64
	MaxTechBonus       float64
	RelevanceFloor     float64
	SkillCap           float64

	// Per-trait weights of the personality base score.
	Openness          float64
	Conscientiousness float64
	Extraversion      float64
	Agreeableness     float64
	Neuroticism       float64

	// Red-flag multipliers, compounded multiplicatively.
	HighNeuroticismFlag     float64
	LowConscientiousnessFlag float64
	LowAgreeablenessFlag    float64
	LowOpennessFlag         float64
	PersonalityCap          float64

	// Background blend.
	Education float64
	Industry  float64

	// Cultural blend.
	Values        float64
	Interests     float64
	ActivityBonus float64
}

func DefaultWeights() Weights {
	return Weights{
		CoreComponent:       0.90,
		BackgroundComponent: 0.05,
		CulturalComponent:   0.05,

		SkillCore:       0.40,
		PersonalityCore: 0.60,

		PrimarySkill:       0.75,
		SecondarySkill:     0.25,
		MinPrimaryCoverage: 0.70,
		CoveragePenalty:    0.50,
		TechBonusPerSkill:  0.01,
		MaxTechBonus:       0.15,
		RelevanceFloor:     0.30,
		SkillCap:           0.95,

		Openness:          0.20,
		Conscientiousness: 0.25,
		Extraversion:      0.15,
		Agreeableness:     0.20,
		Neuroticism:       0.20,

		HighNeuroticismFlag:      0.60,
		LowConscientiousnessFlag: 0.70,
		LowAgreeablenessFlag:     0.80,
		LowOpennessFlag:          0.80,
		PersonalityCap:           0.90,

		Education: 0.50,
		Industry:  0.50,

		Values:        0.50,
		Interests:     0.50,
		ActivityBonus: 0.20,
	}
}

const weightSumTolerance = 0.001

// Validate checks that every weight group blends to 1.0 and that caps, floors
// and multipliers sit in sane ranges.
func (w Weights) Validate() error {
	groups := []struct {
		name string
		sum  float64
	}{
		{"component", w.CoreComponent + w.BackgroundComponent + w.CulturalComponent},
		{"core", w.SkillCore + w.PersonalityCore},
		{"skill", w.PrimarySkill + w.SecondarySkill},
		{"trait", w.Openness + w.Conscientiousness + w.Extraversion + w.Agreeableness + w.Neuroticism},
		{"background", w.Education + w.Industry},
		{"cultural", w.Values + w.Interests},
	}
	for _, g := range groups {
		if math.Abs(g.sum-1.0) > weightSumTolerance {
			return fmt.Errorf("%s weights sum to %.3f, want 1.0", g.name, g.sum)
		}
	}

	unit := map[string]float64{
		"min primary coverage": w.MinPrimaryCoverage,
		"coverage penalty":     w.CoveragePenalty,
		"relevance floor":      w.RelevanceFloor,
		"skill cap":            w.SkillCap,
		"personality cap":      w.PersonalityCap,
		"max tech bonus":       w.MaxTechBonus,
		"activity bonus":       w.ActivityBonus,
	}
	for name, v := range unit {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %.3f out of [0,1]", name, v)
		}
	}

	flags := map[string]float64{
		"high neuroticism flag":     w.HighNeuroticismFlag,
		"low conscientiousness flag": w.LowConscientiousnessFlag,
		"low agreeableness flag":    w.LowAgreeablenessFlag,
		"low openness flag":         w.LowOpennessFlag,
	}
	for name, v := range flags {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%s %.3f out of (0,1]", name, v)
		}
	}
	return nil
}
