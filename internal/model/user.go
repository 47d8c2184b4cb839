package model

type User struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Points  uint64 `json:"points"`

	Settings map[string]any `json:"settings,omitempty"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse struct {
	User

	CreatedMissions      []ShortMission `json:"created_missions"`
	ParticipatedMissions []ShortMission `json:"participated_missions"`
	WonMissions          []ShortMission `json:"won_missions"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User
}

type UpdateUserRequest struct {
	Name     string         `json:"name"`
	Settings map[string]any `json:"settings"`
}

type UpdateUserResponse struct{}
