package scoring

import (
	"testing"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
)

func TestInferWorkingField_DirectLabel(t *testing.T) {
	e := testEngine(t)

	field, ok := e.InferWorkingField("We build a Fintech platform", "")
	if !ok || field != "Fintech" {
		t.Fatalf("got (%q, %v), want (Fintech, true)", field, ok)
	}
}

func TestInferWorkingField_CaseInsensitive(t *testing.T) {
	e := testEngine(t)

	field, ok := e.InferWorkingField("", "a FINTECH play for emerging markets")
	if !ok || field != "Fintech" {
		t.Fatalf("got (%q, %v), want (Fintech, true)", field, ok)
	}
}

func TestInferWorkingField_AliasFallback(t *testing.T) {
	e := testEngine(t)

	field, ok := e.InferWorkingField("We are a GreenTech startup", "")
	if !ok || field != "CleanTech" {
		t.Fatalf("got (%q, %v), want (CleanTech, true)", field, ok)
	}
}

func TestInferWorkingField_NoMatch(t *testing.T) {
	e := testEngine(t)

	if field, ok := e.InferWorkingField("We sell artisanal candles", "handmade in small batches"); ok {
		t.Fatalf("expected no field, got %q", field)
	}
}

func TestSkillScore_FullPrimaryCoverageWithExtras(t *testing.T) {
	e := testEngine(t)

	dev := profile.Profile{
		Role:   profile.RoleDeveloper,
		Skills: append(append([]string{}, fintechPrimary...), "Rust", "GraphQL"),
	}

	// primary 5/5 -> base 0.75, two extras -> +0.02
	approx(t, e.skillScore(fintechFounder(), dev), 0.77, 1e-9)
}

func TestSkillScore_NoSkillsIsHardZero(t *testing.T) {
	e := testEngine(t)

	if got := e.skillScore(fintechFounder(), profile.Profile{Role: profile.RoleDeveloper}); got != 0 {
		t.Fatalf("got %v, want exactly 0", got)
	}
}

func TestSkillScore_NoWorkingFieldIsHardZero(t *testing.T) {
	e := testEngine(t)

	founder := profile.Profile{Role: profile.RoleFounder, About: "We sell artisanal candles"}
	dev := profile.Profile{Role: profile.RoleDeveloper, Skills: fintechPrimary}

	if got := e.skillScore(founder, dev); got != 0 {
		t.Fatalf("got %v, want exactly 0", got)
	}
}

func TestSkillScore_CoverageFloorPenaltyThenRelevanceFloor(t *testing.T) {
	e := testEngine(t)

	// 3/5 primary (0.6 < 0.7): base 0.45 halved to 0.225, lifted to the 0.30
	// relevance floor because real overlap exists.
	dev := profile.Profile{
		Role:   profile.RoleDeveloper,
		Skills: []string{"Full-Stack", "Back-End", "Cloud"},
	}
	approx(t, e.skillScore(fintechFounder(), dev), 0.30, 1e-9)
}

func TestSkillScore_CoverageFloorPenalty(t *testing.T) {
	e := testEngine(t)

	// 3/5 primary + 3/3 secondary: base 0.7, halved to 0.35 by the primary
	// coverage floor; above the relevance floor so it stands.
	dev := profile.Profile{
		Role:   profile.RoleDeveloper,
		Skills: []string{"Full-Stack", "Back-End", "Cloud", "DevOps", "Database", "Mobile"},
	}
	approx(t, e.skillScore(fintechFounder(), dev), 0.35, 1e-9)
}

func TestSkillScore_CappedAt95(t *testing.T) {
	e := testEngine(t)

	skills := append(append([]string{}, fintechPrimary...), "DevOps", "Database", "Mobile")
	for _, extra := range []string{
		"Rust", "GraphQL", "Kotlin", "Swift", "Elixir", "Haskell", "Scala",
		"Erlang", "Clojure", "OCaml", "Zig", "Nim", "Crystal", "Julia", "Fortran", "COBOL",
	} {
		skills = append(skills, extra)
	}
	dev := profile.Profile{Role: profile.RoleDeveloper, Skills: skills}

	approx(t, e.skillScore(fintechFounder(), dev), 0.95, 1e-9)
}

func TestExtractSkillsNeeded(t *testing.T) {
	got := ExtractSkillsNeeded("We need a back-end heavy team", "python and aws experience a plus")

	want := map[string]bool{"Back-End": true, "Python": true, "AWS": true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, s := range got {
		if !want[s] {
			t.Fatalf("unexpected skill %q in %v", s, got)
		}
	}
}
