package scoring

import (
	"strings"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

// InferWorkingField derives the industry a founder operates in from their
// free-text description. A catalog label matches when every term of the label
// (split on "/" and whitespace) appears case-insensitively in the text; the
// first matching label in catalog order wins. Alias phrases are tried only
// when no label matches directly.
func (e *Engine) InferWorkingField(about, longDescription string) (string, bool) {
	text := strings.ToLower(about + " " + longDescription)

	for _, label := range e.catalog.Labels() {
		terms := strings.Fields(strings.ReplaceAll(label, "/", " "))
		all := len(terms) > 0
		for _, term := range terms {
			if !strings.Contains(text, strings.ToLower(term)) {
				all = false
				break
			}
		}
		if all {
			return label, true
		}
	}

	return e.catalog.ResolveAlias(text)
}

// skillScore rates the developer's coverage of the founder's inferred field.
// Hard zero when no field is legible or the developer lists no skills at all.
func (e *Engine) skillScore(founder, developer profile.Profile) float64 {
	field, ok := e.InferWorkingField(founder.About, founder.LongDescription)
	if !ok {
		return 0
	}

	devSkills := toSet(developer.Skills)
	if len(devSkills) == 0 {
		return 0
	}

	required := e.catalog.Lookup(field)
	primary := toSet(required.Primary)
	secondary := toSet(required.Secondary)

	primaryMatches := intersectionSize(primary, devSkills)
	secondaryMatches := intersectionSize(secondary, devSkills)

	primaryCoverage := 0.0
	if len(primary) > 0 {
		primaryCoverage = float64(primaryMatches) / float64(len(primary))
	}
	secondaryCoverage := 0.0
	if len(secondary) > 0 {
		secondaryCoverage = float64(secondaryMatches) / float64(len(secondary))
	}

	base := primaryCoverage*e.weights.PrimarySkill + secondaryCoverage*e.weights.SecondarySkill

	// An incomplete primary skill set must not be averaged away by strong
	// secondary coverage.
	if primaryCoverage < e.weights.MinPrimaryCoverage {
		base *= e.weights.CoveragePenalty
	}

	extra := 0
	for s := range devSkills {
		if _, inPrimary := primary[s]; inPrimary {
			continue
		}
		if _, inSecondary := secondary[s]; inSecondary {
			continue
		}
		extra++
	}
	techBonus := float64(extra) * e.weights.TechBonusPerSkill
	if techBonus > e.weights.MaxTechBonus {
		techBonus = e.weights.MaxTechBonus
	}

	final := base + techBonus

	// Any true overlap with the required sets is worth more than the raw
	// formula might produce.
	if primaryMatches > 0 || secondaryMatches > 0 {
		if final < e.weights.RelevanceFloor {
			final = e.weights.RelevanceFloor
		}
	}

	if final > e.weights.SkillCap {
		final = e.weights.SkillCap
	}
	return final
}

// Skills a founder's description may call for, scanned when building a match
// snapshot.
var commonSkills = []string{
	"Full-Stack", "Back-End", "Front-End", "DevOps", "Cloud",
	"Python", "JavaScript", "React", "Node.js", "AWS",
	"Machine Learning", "AI", "Data Science", "Mobile",
	"iOS", "Android", "UI/UX", "Database", "Security",
}

// ExtractSkillsNeeded scans the founder's free text for well-known skill
// keywords. Basic keyword matching, kept deterministic on purpose.
func ExtractSkillsNeeded(about, longDescription string) []string {
	text := strings.ToLower(about + " " + longDescription)
	found := make([]string, 0)
	for _, skill := range commonSkills {
		if strings.Contains(text, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
