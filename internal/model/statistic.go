package model

type UserStatistic struct {
	User        User   `json:"user"`
	Value       int    `json:"value"`
	CurrentRank int    `json:"current_rank"`
	MissionID   string `json:"mission_id"`
}

type GetLeaderBoardRequest struct {
	MissionID string `json:"mission_id"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetLeaderBoardResponse struct {
	LeaderBoard []UserStatistic `json:"leaderboard"`
}
