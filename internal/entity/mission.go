package entity

import (
	"database/sql"
	"time"

	"github.com/missionforge/backend/pkg/enum"
)

type MissionStatusType string

var (
	MissionDraft     = enum.New(MissionStatusType("draft"))
	MissionActive    = enum.New(MissionStatusType("active"))
	MissionPaused    = enum.New(MissionStatusType("paused"))
	MissionCompleted = enum.New(MissionStatusType("completed"))
	MissionCancelled = enum.New(MissionStatusType("cancelled"))
)

type DistributionType string

var (
	DistributionLinear         = enum.New(DistributionType("linear"))
	DistributionWinnerTakesAll = enum.New(DistributionType("winner_takes_all"))
	DistributionTopPerformers  = enum.New(DistributionType("top_performers"))
	DistributionTiered         = enum.New(DistributionType("tiered"))
)

// Tier assigns a percentage of the reward pool to an inclusive rank range.
// Only used with the tiered distribution.
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

type Mission struct {
	Base

	CreatedBy string `gorm:"index"`
	Creator   User   `gorm:"foreignKey:CreatedBy"`

	Title       string
	Summary     string
	Description []byte `gorm:"type:longtext"`
	Category    string `gorm:"index"`
	Tags        Array[string]

	TokenID     sql.NullString
	Token       AllowedToken `gorm:"foreignKey:TokenID"`
	TokenAmount uint64
	TotalPoints uint64

	StartTime time.Time
	EndTime   time.Time
	Status    MissionStatusType `gorm:"index"`

	Participants      uint64
	PointsDistributed uint64
	TokensDistributed uint64

	TaskLinks   Array[TaskLink]
	SocialLinks Array[SocialLink]

	Distribution DistributionType
	MaxWinners   int
	Tiers        Array[Tier]

	Finalized bool
}
