package entity

import (
	"time"

	"github.com/missionforge/backend/pkg/enum"
)

type SubmissionType string

var (
	SubmissionLink        = enum.New(SubmissionType("link"))
	SubmissionText        = enum.New(SubmissionType("text"))
	SubmissionFile        = enum.New(SubmissionType("file"))
	SubmissionSocialProof = enum.New(SubmissionType("social_proof"))
)

type SubmissionStatusType string

var (
	SubmissionPending     = enum.New(SubmissionStatusType("pending"))
	SubmissionUnderReview = enum.New(SubmissionStatusType("under_review"))
	SubmissionApproved    = enum.New(SubmissionStatusType("approved"))
	SubmissionRejected    = enum.New(SubmissionStatusType("rejected"))
)

type Submission struct {
	Base

	// The composite unique index is the arbiter for the
	// one-submission-per-user-per-mission rule under concurrent requests.
	MissionID string  `gorm:"uniqueIndex:idx_submissions_mission_user"`
	Mission   Mission `gorm:"foreignKey:MissionID"`

	UserID string `gorm:"uniqueIndex:idx_submissions_mission_user"`
	User   User   `gorm:"foreignKey:UserID"`

	Type    SubmissionType
	Content Map
	Status  SubmissionStatusType `gorm:"index"`
	Points  uint64

	ReviewerID      string
	ReviewedAt      time.Time
	ReviewerComment string
}
