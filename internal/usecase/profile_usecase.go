package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/repository"
)

type ProfileUsecase interface {
	GetFounder(ctx context.Context, id string) (profile.Profile, error)
	GetDeveloper(ctx context.Context, id string) (profile.Profile, error)
	ListDevelopers(ctx context.Context, limit int, afterID string) ([]profile.Profile, error)
	Search(ctx context.Context, role profile.Role, query string) ([]profile.Profile, error)
	UpdateWorkStyles(ctx context.Context, id string, styles []string) ([]string, error)
}

type Profiles struct {
	repo repository.ProfileRepository
}

func NewProfileUsecase(repo repository.ProfileRepository) *Profiles {
	return &Profiles{repo: repo}
}

func (u *Profiles) GetFounder(ctx context.Context, id string) (profile.Profile, error) {
	return u.getWithRole(ctx, id, profile.RoleFounder)
}

func (u *Profiles) GetDeveloper(ctx context.Context, id string) (profile.Profile, error) {
	return u.getWithRole(ctx, id, profile.RoleDeveloper)
}

func (u *Profiles) ListDevelopers(ctx context.Context, limit int, afterID string) ([]profile.Profile, error) {
	out, err := u.repo.ListByRole(ctx, profile.RoleDeveloper, limit, strings.TrimSpace(afterID))
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Search matches the query as a case-insensitive substring against name,
// skills and industries. Filtering happens here rather than in SQL; the
// corpus is small and the matching rules are easier to keep honest in one
// place.
func (u *Profiles) Search(ctx context.Context, role profile.Role, query string) ([]profile.Profile, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, ErrInvalidInput
	}

	all, err := u.listAll(ctx, role)
	if err != nil {
		return nil, err
	}

	out := make([]profile.Profile, 0)
	for _, p := range all {
		if profileMatchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *Profiles) UpdateWorkStyles(ctx context.Context, id string, styles []string) ([]string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInput
	}

	normalized, err := profile.NormalizeWorkStyles(styles)
	if err != nil {
		return nil, ErrInvalidInput
	}

	err = u.repo.UpdateWorkStyles(ctx, id, normalized)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, ErrInternal
	}
	return normalized, nil
}

func (u *Profiles) getWithRole(ctx context.Context, id string, role profile.Role) (profile.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profile.Profile{}, ErrInvalidInput
	}
	p, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return profile.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return profile.Profile{}, ErrInternal
	}
	if p.Role != role {
		return profile.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *Profiles) listAll(ctx context.Context, role profile.Role) ([]profile.Profile, error) {
	const pageSize = 500

	var (
		out     []profile.Profile
		afterID string
	)
	for {
		page, err := u.repo.ListByRole(ctx, role, pageSize, afterID)
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, page...)
		if len(page) < pageSize {
			return out, nil
		}
		afterID = page[len(page)-1].ID
	}
}

func profileMatchesQuery(p profile.Profile, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	for _, s := range p.Industries {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}
