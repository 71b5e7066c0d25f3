package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/match"
)

func newLifecycleFixture(t *testing.T) (*Lifecycle, *mockMatchRepo) {
	t.Helper()
	profiles := newMockProfileRepo(testFounder(), testDeveloperClose())
	matches := newMockMatchRepo()
	scorer := NewMatchUsecase(profiles, testEngine(t), nil, 0, 4)
	return NewLifecycleUsecase(profiles, matches, scorer), matches
}

func TestLifecycleUsecase_CreateMatch(t *testing.T) {
	uc, matches := newLifecycleFixture(t)

	rec, err := uc.CreateMatch(context.Background(), "f1", "d1", "f1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Status != match.StatusPending {
		t.Fatalf("expected pending status, got %q", rec.Status)
	}
	if len(rec.StatusHistory) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rec.StatusHistory))
	}
	if rec.StatusHistory[0].Status != match.StatusPending || rec.StatusHistory[0].UpdatedBy != "f1" {
		t.Fatalf("unexpected initial history entry: %+v", rec.StatusHistory[0])
	}
	if rec.FounderSnapshot.Name != "Ada" || rec.DeveloperSnapshot.Name != "Grace" {
		t.Fatalf("snapshots not taken from profiles")
	}
	if rec.Scores.Total <= 0 {
		t.Fatalf("expected scores on the record, got %+v", rec.Scores)
	}
	if _, ok := matches.records[rec.MatchID]; !ok {
		t.Fatalf("record not persisted")
	}
}

func TestLifecycleUsecase_CreateMatch_UnknownProfile(t *testing.T) {
	uc, _ := newLifecycleFixture(t)
	if _, err := uc.CreateMatch(context.Background(), "f1", "missing", "f1"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestLifecycleUsecase_CreateMatch_MissingInput(t *testing.T) {
	uc, _ := newLifecycleFixture(t)
	if _, err := uc.CreateMatch(context.Background(), "f1", "d1", " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLifecycleUsecase_UpdateStatus_AppendOnly(t *testing.T) {
	uc, _ := newLifecycleFixture(t)

	rec, err := uc.CreateMatch(context.Background(), "f1", "d1", "f1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	statuses := []string{match.StatusActive, match.StatusSuccessful, match.StatusFailed}
	for _, st := range statuses {
		rec, err = uc.UpdateStatus(context.Background(), rec.MatchID, st, "d1")
		if err != nil {
			t.Fatalf("unexpected err updating to %q: %v", st, err)
		}
		if rec.Status != st {
			t.Fatalf("expected status %q, got %q", st, rec.Status)
		}
	}

	if len(rec.StatusHistory) != len(statuses)+1 {
		t.Fatalf("expected %d history entries, got %d", len(statuses)+1, len(rec.StatusHistory))
	}
	// Earlier entries are never rewritten.
	if rec.StatusHistory[0].Status != match.StatusPending {
		t.Fatalf("initial entry rewritten: %+v", rec.StatusHistory[0])
	}
	for i, st := range statuses {
		if rec.StatusHistory[i+1].Status != st {
			t.Fatalf("history out of order at %d: got %q want %q", i+1, rec.StatusHistory[i+1].Status, st)
		}
	}
}

func TestLifecycleUsecase_UpdateStatus_UnknownMatch(t *testing.T) {
	uc, _ := newLifecycleFixture(t)
	if _, err := uc.UpdateStatus(context.Background(), uuid.New(), match.StatusActive, "f1"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestLifecycleUsecase_UpdateStatus_MissingStatus(t *testing.T) {
	uc, _ := newLifecycleFixture(t)
	if _, err := uc.UpdateStatus(context.Background(), uuid.New(), "", "f1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLifecycleUsecase_GetHistory(t *testing.T) {
	uc, _ := newLifecycleFixture(t)

	if _, err := uc.CreateMatch(context.Background(), "f1", "d1", "f1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, role := range []string{"founder", "", "any"} {
		recs, err := uc.GetHistory(context.Background(), "f1", role)
		if err != nil {
			t.Fatalf("unexpected err for role %q: %v", role, err)
		}
		if len(recs) != 1 {
			t.Fatalf("expected 1 record for role %q, got %d", role, len(recs))
		}
	}

	recs, err := uc.GetHistory(context.Background(), "d1", "developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record for developer, got %d", len(recs))
	}

	// Founder-side lookup for a developer id finds nothing.
	recs, err = uc.GetHistory(context.Background(), "d1", "founder")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}

	if _, err := uc.GetHistory(context.Background(), "f1", "investor"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}
