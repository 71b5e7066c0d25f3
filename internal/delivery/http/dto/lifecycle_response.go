package dto

import (
	"time"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/match"
)

type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updated_by"`
}

type MatchRecordResponse struct {
	MatchID           string                  `json:"match_id"`
	CreatedAt         time.Time               `json:"created_at"`
	FounderID         string                  `json:"founder_id"`
	DeveloperID       string                  `json:"developer_id"`
	InitiatedBy       string                  `json:"initiated_by"`
	Scores            ScoresResponse          `json:"scores"`
	FounderSnapshot   match.FounderSnapshot   `json:"founder_snapshot"`
	DeveloperSnapshot match.DeveloperSnapshot `json:"developer_snapshot"`
	Status            string                  `json:"status"`
	StatusHistory     []StatusEntryResponse   `json:"status_history"`
}

func NewMatchRecordResponse(rec match.Record) MatchRecordResponse {
	history := make([]StatusEntryResponse, 0, len(rec.StatusHistory))
	for _, e := range rec.StatusHistory {
		history = append(history, StatusEntryResponse{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			UpdatedBy: e.UpdatedBy,
		})
	}
	return MatchRecordResponse{
		MatchID:           rec.MatchID.String(),
		CreatedAt:         rec.CreatedAt,
		FounderID:         rec.FounderID,
		DeveloperID:       rec.DeveloperID,
		InitiatedBy:       rec.InitiatedBy,
		Scores:            NewScoresResponse(rec.Scores),
		FounderSnapshot:   rec.FounderSnapshot,
		DeveloperSnapshot: rec.DeveloperSnapshot,
		Status:            rec.Status,
		StatusHistory:     history,
	}
}
