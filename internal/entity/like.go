package entity

import (
	"time"

	"github.com/missionforge/backend/pkg/enum"
)

type LikeTargetType string

var (
	LikeTargetMission    = enum.New(LikeTargetType("mission"))
	LikeTargetSubmission = enum.New(LikeTargetType("submission"))
)

type Like struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time

	// The unique index makes the toggle idempotent when the same actor races
	// against themselves.
	UserID     string         `gorm:"uniqueIndex:idx_likes_user_target"`
	TargetType LikeTargetType `gorm:"uniqueIndex:idx_likes_user_target"`
	TargetID   string         `gorm:"uniqueIndex:idx_likes_user_target"`
}
