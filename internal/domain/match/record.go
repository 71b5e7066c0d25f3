package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/scoring"
)

// Match statuses. Initial state is always pending; beyond that any status may
// follow any other — no transition graph is enforced here, deliberately.
const (
	StatusPending    = "pending"
	StatusActive     = "active"
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
)

// StatusEntry is one append-only history item. Existing entries are never
// rewritten.
type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updated_by"`
}

// FounderSnapshot captures the founder's profile as it existed at match
// creation, decoupled from later edits.
type FounderSnapshot struct {
	Name            string             `json:"name"`
	Industries      []string           `json:"industries"`
	Traits          map[string]float64 `json:"personality_results"`
	WorkStyles      []string           `json:"work_styles"`
	About           string             `json:"about"`
	LongDescription string             `json:"long_description"`
	SkillsNeeded    []string           `json:"skills_needed"`
}

// DeveloperSnapshot captures the developer side at creation time.
type DeveloperSnapshot struct {
	Name       string             `json:"name"`
	Skills     []string           `json:"skills"`
	Traits     map[string]float64 `json:"personality_results"`
	WorkStyles []string           `json:"work_styles"`
	Industries []string           `json:"industries"`
	Degrees    []string           `json:"degrees"`
	Companies  []string           `json:"companies"`
}

// Record is one persisted match. Everything except Status and StatusHistory
// is immutable after creation.
type Record struct {
	MatchID           uuid.UUID         `json:"match_id"`
	CreatedAt         time.Time         `json:"created_at"`
	FounderID         string            `json:"founder_id"`
	DeveloperID       string            `json:"developer_id"`
	InitiatedBy       string            `json:"initiated_by"`
	Scores            scoring.Breakdown `json:"scores"`
	FounderSnapshot   FounderSnapshot   `json:"founder_snapshot"`
	DeveloperSnapshot DeveloperSnapshot `json:"developer_snapshot"`
	Status            string            `json:"status"`
	StatusHistory     []StatusEntry     `json:"status_history"`
}

// New builds a fresh pending record with both profile snapshots taken now.
func New(founder, developer profile.Profile, scores scoring.Breakdown, initiatedBy string, now time.Time) Record {
	return Record{
		MatchID:     uuid.New(),
		CreatedAt:   now,
		FounderID:   founder.ID,
		DeveloperID: developer.ID,
		InitiatedBy: initiatedBy,
		Scores:      scores,
		FounderSnapshot: FounderSnapshot{
			Name:            founder.Name,
			Industries:      founder.Industries,
			Traits:          founder.Traits,
			WorkStyles:      founder.WorkStyles,
			About:           founder.About,
			LongDescription: founder.LongDescription,
			SkillsNeeded:    scoring.ExtractSkillsNeeded(founder.About, founder.LongDescription),
		},
		DeveloperSnapshot: DeveloperSnapshot{
			Name:       developer.Name,
			Skills:     developer.Skills,
			Traits:     developer.Traits,
			WorkStyles: developer.WorkStyles,
			Industries: developer.Industries,
			Degrees:    developer.Degrees,
			Companies:  developer.Companies,
		},
		Status: StatusPending,
		StatusHistory: []StatusEntry{{
			Status:    StatusPending,
			Timestamp: now,
			UpdatedBy: initiatedBy,
		}},
	}
}
