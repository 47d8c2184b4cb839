package model

type Tier struct {
	Percentage int `json:"percentage"`
	MinRank    int `json:"min_rank"`
	MaxRank    int `json:"max_rank"`
}

type TaskLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type RewardConfig struct {
	Distribution string `json:"distribution"`
	MaxWinners   int    `json:"max_winners"`
	Tiers        []Tier `json:"tiers,omitempty"`
}

type Mission struct {
	ID          string   `json:"id"`
	CreatedBy   string   `json:"created_by"`
	Creator     User     `json:"creator"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`

	TokenID     string `json:"token_id,omitempty"`
	TokenSymbol string `json:"token_symbol,omitempty"`
	TokenAmount uint64 `json:"token_amount"`
	TotalPoints uint64 `json:"total_points"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`

	Participants      uint64 `json:"participants"`
	PointsDistributed uint64 `json:"points_distributed"`
	TokensDistributed uint64 `json:"tokens_distributed"`

	TaskLinks   []TaskLink   `json:"task_links"`
	SocialLinks []SocialLink `json:"social_links"`

	Reward    RewardConfig `json:"reward"`
	Finalized bool         `json:"finalized"`
}

type ShortMission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	TotalPoints uint64 `json:"total_points"`
}

type CreateMissionRequest struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`

	TokenID     string `json:"token_id"`
	TokenAmount uint64 `json:"token_amount"`
	TotalPoints uint64 `json:"total_points"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	TaskLinks   []TaskLink   `json:"task_links"`
	SocialLinks []SocialLink `json:"social_links"`

	Reward RewardConfig `json:"reward"`
}

type CreateMissionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetMissionRequest struct {
	ID string `json:"id"`
}

type GetMissionResponse struct {
	Mission
}

type GetListMissionRequest struct {
	Q         string `json:"q"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetListMissionResponse struct {
	Missions []Mission `json:"missions"`
}

type UpdateMissionRequest struct {
	ID string `json:"id"`

	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`

	TokenID     string `json:"token_id"`
	TokenAmount uint64 `json:"token_amount"`
	TotalPoints uint64 `json:"total_points"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	TaskLinks   []TaskLink   `json:"task_links"`
	SocialLinks []SocialLink `json:"social_links"`

	Reward RewardConfig `json:"reward"`
}

type UpdateMissionResponse struct{}

type DeleteMissionRequest struct {
	ID string `json:"id"`
}

type DeleteMissionResponse struct{}

type ChangeMissionStatusRequest struct {
	ID string `json:"id"`
}

type ChangeMissionStatusResponse struct {
	Status string `json:"status"`
}

type FinalizeMissionRequest struct {
	ID string `json:"id"`
}

type MissionWinner struct {
	UserID      string `json:"user_id"`
	Rank        int    `json:"rank"`
	Points      uint64 `json:"points"`
	TokenAmount uint64 `json:"token_amount"`
}

type FinalizeMissionResponse struct {
	Winners []MissionWinner `json:"winners"`
}
