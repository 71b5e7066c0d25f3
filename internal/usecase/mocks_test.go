package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/match"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/repository"
)

type mockProfileRepo struct {
	profiles map[string]profile.Profile
	err      error

	workStyleCalls map[string][]string
}

func newMockProfileRepo(profiles ...profile.Profile) *mockProfileRepo {
	m := &mockProfileRepo{
		profiles:       make(map[string]profile.Profile),
		workStyleCalls: make(map[string][]string),
	}
	for _, p := range profiles {
		m.profiles[p.ID] = p
	}
	return m
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return profile.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) ListByRole(_ context.Context, role profile.Role, limit int, afterID string) ([]profile.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]string, 0, len(m.profiles))
	for id, p := range m.profiles {
		if p.Role == role && id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]profile.Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.profiles[id])
	}
	return out, nil
}

func (m *mockProfileRepo) UpdateWorkStyles(_ context.Context, id string, styles []string) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.WorkStyles = styles
	m.profiles[id] = p
	m.workStyleCalls[id] = styles
	return nil
}

type mockMatchRepo struct {
	records map[uuid.UUID]match.Record
	err     error
}

func newMockMatchRepo() *mockMatchRepo {
	return &mockMatchRepo{records: make(map[uuid.UUID]match.Record)}
}

func (m *mockMatchRepo) Insert(_ context.Context, rec match.Record) error {
	if m.err != nil {
		return m.err
	}
	m.records[rec.MatchID] = rec
	return nil
}

func (m *mockMatchRepo) AppendStatus(_ context.Context, matchID uuid.UUID, entry match.StatusEntry) error {
	if m.err != nil {
		return m.err
	}
	rec, ok := m.records[matchID]
	if !ok {
		return repository.ErrMatchNotFound
	}
	rec.Status = entry.Status
	rec.StatusHistory = append(rec.StatusHistory, entry)
	m.records[matchID] = rec
	return nil
}

func (m *mockMatchRepo) GetByID(_ context.Context, matchID uuid.UUID) (match.Record, error) {
	if m.err != nil {
		return match.Record{}, m.err
	}
	rec, ok := m.records[matchID]
	if !ok {
		return match.Record{}, repository.ErrMatchNotFound
	}
	return rec, nil
}

func (m *mockMatchRepo) FindByFounder(_ context.Context, founderID string) ([]match.Record, error) {
	return m.filter(func(r match.Record) bool { return r.FounderID == founderID })
}

func (m *mockMatchRepo) FindByDeveloper(_ context.Context, developerID string) ([]match.Record, error) {
	return m.filter(func(r match.Record) bool { return r.DeveloperID == developerID })
}

func (m *mockMatchRepo) FindByParticipant(_ context.Context, participantID string) ([]match.Record, error) {
	return m.filter(func(r match.Record) bool {
		return r.FounderID == participantID || r.DeveloperID == participantID
	})
}

func (m *mockMatchRepo) filter(keep func(match.Record) bool) ([]match.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]match.Record, 0)
	for _, rec := range m.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
	gets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.gets++
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	f.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = b
	return nil
}
