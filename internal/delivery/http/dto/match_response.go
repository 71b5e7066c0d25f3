package dto

import "github.com/ReeceWin/FounderMatchaV2/internal/domain/scoring"

type ScoresResponse struct {
	TotalScore       float64 `json:"total_score"`
	CoreScore        float64 `json:"core_score"`
	SkillScore       float64 `json:"skill_score"`
	PersonalityScore float64 `json:"personality_score"`
	BackgroundScore  float64 `json:"background_score"`
	CulturalScore    float64 `json:"cultural_score"`
}

func NewScoresResponse(b scoring.Breakdown) ScoresResponse {
	return ScoresResponse{
		TotalScore:       b.Total,
		CoreScore:        b.Core,
		SkillScore:       b.Skill,
		PersonalityScore: b.Personality,
		BackgroundScore:  b.Background,
		CulturalScore:    b.Cultural,
	}
}

type CalculateMatchResponse struct {
	FounderID   string         `json:"founder_id"`
	DeveloperID string         `json:"developer_id"`
	Scores      ScoresResponse `json:"scores"`
}

type RankedDeveloperResponse struct {
	Developer ProfileResponse `json:"developer"`
	Scores    ScoresResponse  `json:"scores"`
}

type RankedDevelopersResponse struct {
	FounderID string                    `json:"founder_id"`
	MinScore  float64                   `json:"min_score"`
	Results   []RankedDeveloperResponse `json:"results"`
}
