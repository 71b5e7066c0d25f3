package scoring

import (
	"strings"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

var technicalFields = []string{"engineering", "computer", "data", "statistics", "mathematics", "robotics"}

var businessFields = []string{"business", "management", "mba", "economics", "finance"}

func degreeText(degrees []string) string {
	return strings.ToLower(strings.Join(degrees, " "))
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// backgroundScore blends educational pairing with industry-list overlap.
// Business founder + technical developer and technical founder + technical
// developer are the two viable pairings; everything else degrades to 0.6
// rather than zero.
func (e *Engine) backgroundScore(founder, developer profile.Profile) float64 {
	founderDegrees := degreeText(founder.Degrees)
	developerDegrees := degreeText(developer.Degrees)

	founderTechnical := containsAny(founderDegrees, technicalFields)
	founderBusiness := containsAny(founderDegrees, businessFields)
	developerTechnical := containsAny(developerDegrees, technicalFields)

	educationScore := 0.6
	if (founderBusiness && developerTechnical) || (founderTechnical && developerTechnical) {
		educationScore = 1.0
	}

	industryOverlap := jaccard(toSet(founder.Industries), toSet(developer.Industries))

	return educationScore*e.weights.Education + industryOverlap*e.weights.Industry
}
