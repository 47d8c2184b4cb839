package entity

import (
	"database/sql"

	"github.com/missionforge/backend/pkg/enum"
)

type PayRewardStatusType string

var (
	PayRewardPending = enum.New(PayRewardStatusType("pending"))
	PayRewardSettled = enum.New(PayRewardStatusType("settled"))
)

// PayReward records what should be paid out after a mission is finalized.
// The actual chain settlement happens outside of this service; a settler
// flips the status once the transfer is confirmed.
type PayReward struct {
	Base

	MissionID string  `gorm:"index"`
	Mission   Mission `gorm:"foreignKey:MissionID"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	TokenID     sql.NullString
	Token       AllowedToken `gorm:"foreignKey:TokenID"`
	TokenAmount uint64
	Points      uint64

	Status PayRewardStatusType
}
