package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Role string

const (
	RoleFounder   Role = "founder"
	RoleDeveloper Role = "developer"
)

// The five trait keys a personality result may carry. Anything else in a
// stored trait document is rejected at the boundary.
const (
	TraitOpenness          = "openness"
	TraitConscientiousness = "conscientiousness"
	TraitExtraversion      = "extraversion"
	TraitAgreeableness     = "agreeableness"
	TraitNeuroticism       = "neuroticism"
)

var TraitNames = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

var (
	ErrInvalidRole       = errors.New("invalid profile role")
	ErrInvalidTraitValue = errors.New("invalid personality trait value")
	ErrUnknownTrait      = errors.New("unknown personality trait")
	ErrInvalidWorkStyle  = errors.New("invalid work style")
)

// Profile is the typed, read-only view of a stored user document. The scoring
// core never mutates one; it is built and validated once at the repository
// boundary.
type Profile struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Role            Role               `json:"role"`
	About           string             `json:"about"`
	LongDescription string             `json:"longDescription"`
	Skills          []string           `json:"skills"`
	Industries      []string           `json:"industries"`
	Degrees         []string           `json:"degrees"`
	Companies       []string           `json:"companies"`
	AdmiredFigures  []string           `json:"admiredFigures"`
	Hobbies         []string           `json:"hobbies"`
	WorkStyles      []string           `json:"workStyles"`
	Traits          map[string]float64 `json:"personalityTraits"`
}

// Trait returns the named trait score, defaulting to 0 when absent.
func (p Profile) Trait(name string) float64 {
	return p.Traits[name]
}

// HasTraits reports whether the profile carries any personality data at all.
// An empty trait map is valid input and scores zero, by design.
func (p Profile) HasTraits() bool {
	return len(p.Traits) > 0
}

func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(s))) {
	case RoleFounder:
		return RoleFounder, nil
	case RoleDeveloper:
		return RoleDeveloper, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// ParseTraits converts a decoded trait document into a typed trait map. A
// non-numeric value or an unknown key is structural corruption and surfaces as
// an error instead of being silently defaulted; a missing key or an empty map
// is not.
func ParseTraits(raw map[string]any) (map[string]float64, error) {
	if len(raw) == 0 {
		return map[string]float64{}, nil
	}

	known := make(map[string]struct{}, len(TraitNames))
	for _, n := range TraitNames {
		known[n] = struct{}{}
	}

	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		key := strings.ToLower(strings.TrimSpace(k))
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTrait, k)
		}
		switch n := v.(type) {
		case float64:
			out[key] = n
		case int:
			out[key] = float64(n)
		case int64:
			out[key] = float64(n)
		default:
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidTraitValue, key, v)
		}
	}
	return out, nil
}

var workStyleVocabulary = map[string]struct{}{
	"Remote":  {},
	"Hybrid":  {},
	"On-site": {},
}

// NormalizeWorkStyles validates the fixed work-style vocabulary, dropping
// duplicates and returning the set sorted.
func NormalizeWorkStyles(styles []string) ([]string, error) {
	seen := make(map[string]struct{}, len(styles))
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := workStyleVocabulary[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWorkStyle, s)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrInvalidWorkStyle)
	}
	sort.Strings(out)
	return out, nil
}
