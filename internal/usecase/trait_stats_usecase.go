package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/repository"
)

// TraitSummary holds descriptive statistics for one personality trait.
type TraitSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// TraitReport groups trait summaries for the whole population and per role.
type TraitReport struct {
	Overall    map[string]TraitSummary `json:"overall"`
	Founders   map[string]TraitSummary `json:"founders"`
	Developers map[string]TraitSummary `json:"developers"`
}

type TraitStatsUsecase interface {
	Analyze(ctx context.Context) (TraitReport, error)
}

type TraitStats struct {
	repo repository.ProfileRepository
}

func NewTraitStatsUsecase(repo repository.ProfileRepository) *TraitStats {
	return &TraitStats{repo: repo}
}

func (u *TraitStats) Analyze(ctx context.Context) (TraitReport, error) {
	founders, err := u.listAll(ctx, profile.RoleFounder)
	if err != nil {
		return TraitReport{}, err
	}
	developers, err := u.listAll(ctx, profile.RoleDeveloper)
	if err != nil {
		return TraitReport{}, err
	}

	all := make([]profile.Profile, 0, len(founders)+len(developers))
	all = append(all, founders...)
	all = append(all, developers...)

	return TraitReport{
		Overall:    summarize(all),
		Founders:   summarize(founders),
		Developers: summarize(developers),
	}, nil
}

func (u *TraitStats) listAll(ctx context.Context, role profile.Role) ([]profile.Profile, error) {
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

func summarize(profiles []profile.Profile) map[string]TraitSummary {
	out := make(map[string]TraitSummary, len(profile.TraitNames))
	for _, name := range profile.TraitNames {
		values := make([]float64, 0, len(profiles))
		for _, p := range profiles {
			if v, ok := p.Traits[name]; ok {
				values = append(values, v)
			}
		}
		out[name] = summarizeValues(values)
	}
	return out
}

func summarizeValues(values []float64) TraitSummary {
	n := len(values)
	if n == 0 {
		return TraitSummary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return TraitSummary{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(variance),
	}
}
