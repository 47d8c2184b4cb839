package model

type ToggleLikeRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
}

type ToggleLikeResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type GetLikesRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
}

type GetLikesResponse struct {
	Count        int64 `json:"count"`
	UserHasLiked bool  `json:"user_has_liked"`
}
