package entity

import (
	"time"

	"gorm.io/gorm"
)

// Participant is the join record between a user and a mission they submitted
// to. It carries the points earned in that mission and, after finalization,
// the winner flag and final rank.
type Participant struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	MissionID string  `gorm:"primaryKey"`
	Mission   Mission `gorm:"foreignKey:MissionID"`

	Points   uint64
	IsWinner bool
	Rank     int
}
