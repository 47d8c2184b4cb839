package model

type Submission struct {
	ID        string         `json:"id"`
	MissionID string         `json:"mission_id"`
	UserID    string         `json:"user_id"`
	User      User           `json:"user"`
	Type      string         `json:"type"`
	Content   map[string]any `json:"content"`
	Status    string         `json:"status"`
	Points    uint64         `json:"points"`

	ReviewerID      string `json:"reviewer_id,omitempty"`
	ReviewedAt      string `json:"reviewed_at,omitempty"`
	ReviewerComment string `json:"reviewer_comment,omitempty"`

	CreatedAt string `json:"created_at"`
}

type SubmitMissionRequest struct {
	MissionID string         `json:"mission_id"`
	Type      string         `json:"type"`
	Content   map[string]any `json:"content"`
}

type SubmitMissionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetSubmissionRequest struct {
	ID string `json:"id"`
}

type GetSubmissionResponse struct {
	Submission
}

type GetListSubmissionRequest struct {
	MissionID string `json:"mission_id"`
	Status    string `json:"status"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetListSubmissionResponse struct {
	Submissions []Submission `json:"submissions"`
}

type ReviewSubmissionRequest struct {
	ID      string `json:"id"`
	Action  string `json:"action"`
	Points  uint64 `json:"points"`
	Comment string `json:"comment"`
}

type ReviewSubmissionResponse struct {
	Status string `json:"status"`
}
