package dto

import "github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"

type ProfileResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	About           string             `json:"about"`
	LongDescription string             `json:"long_description"`
	Skills          []string           `json:"skills"`
	Industries      []string           `json:"industries"`
	Degrees         []string           `json:"degrees"`
	Companies       []string           `json:"companies"`
	AdmiredFigures  []string           `json:"admired_figures"`
	Hobbies         []string           `json:"hobbies"`
	WorkStyles      []string           `json:"work_styles"`
	Traits          map[string]float64 `json:"personality_results"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Name:            p.Name,
		Role:            string(p.Role),
		About:           p.About,
		LongDescription: p.LongDescription,
		Skills:          p.Skills,
		Industries:      p.Industries,
		Degrees:         p.Degrees,
		Companies:       p.Companies,
		AdmiredFigures:  p.AdmiredFigures,
		Hobbies:         p.Hobbies,
		WorkStyles:      p.WorkStyles,
		Traits:          p.Traits,
	}
}

type WorkStylesRequest struct {
	WorkStyles []string `json:"work_styles"`
}

type WorkStylesResponse struct {
	ID         string   `json:"id"`
	WorkStyles []string `json:"work_styles"`
}
