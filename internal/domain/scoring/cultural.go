package scoring

import (
	"strings"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

var activeHobbyKeywords = []string{"climbing", "hiking", "biking", "surfing", "martial", "sports"}

func hasActiveHobby(hobbies map[string]struct{}) bool {
	for hobby := range hobbies {
		for _, keyword := range activeHobbyKeywords {
			if strings.Contains(hobby, keyword) {
				return true
			}
		}
	}
	return false
}

// culturalScore blends shared values (company history, admired figures) with
// shared interests (hobbies, plus a bonus when both sides lead an active
// lifestyle).
func (e *Engine) culturalScore(founder, developer profile.Profile) float64 {
	companyOverlap := jaccard(toSet(founder.Companies), toSet(developer.Companies))
	figureOverlap := jaccard(toSet(founder.AdmiredFigures), toSet(developer.AdmiredFigures))
	valuesScore := (companyOverlap + figureOverlap) / 2

	founderHobbies := toLowerSet(founder.Hobbies)
	developerHobbies := toLowerSet(developer.Hobbies)
	hobbyOverlap := jaccard(founderHobbies, developerHobbies)

	interestsScore := hobbyOverlap
	if hasActiveHobby(founderHobbies) && hasActiveHobby(developerHobbies) {
		interestsScore += e.weights.ActivityBonus
	}
	interestsScore = clamp01(interestsScore)

	return valuesScore*e.weights.Values + interestsScore*e.weights.Interests
}
