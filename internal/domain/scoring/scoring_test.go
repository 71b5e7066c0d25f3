package scoring

import (
	"math"
	"testing"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

var fintechPrimary = []string{"Full-Stack", "Back-End", "Cloud", "Networks & Distributed Systems", "Cyber Security"}

func testCatalog() *IndustryCatalog {
	return NewCatalog(
		[]string{"Fintech", "CleanTech"},
		map[string]SkillSet{
			"Fintech": {
				Primary:   fintechPrimary,
				Secondary: []string{"DevOps", "Database", "Mobile"},
			},
			"CleanTech": {
				Primary:   []string{"Back-End", "Data Science", "Cloud"},
				Secondary: []string{"Full-Stack", "DevOps", "Mobile"},
			},
		},
		[]string{"GreenTech", "Green Technology"},
		map[string]string{
			"GreenTech":        "CleanTech",
			"Green Technology": "CleanTech",
		},
	)
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testCatalog(), DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return e
}

func fintechFounder() profile.Profile {
	return profile.Profile{
		ID:    "founder-1",
		Role:  profile.RoleFounder,
		About: "We build a Fintech platform",
	}
}

func approx(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}
