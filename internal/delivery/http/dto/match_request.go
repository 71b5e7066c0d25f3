package dto

type CalculateMatchRequest struct {
	FounderID   string `json:"founder_id"`
	DeveloperID string `json:"developer_id"`
}

type CreateMatchRequest struct {
	FounderID   string `json:"founder_id"`
	DeveloperID string `json:"developer_id"`
	InitiatedBy string `json:"initiated_by"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updated_by"`
}
