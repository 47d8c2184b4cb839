package missionstate

import (
	"time"

	"github.com/missionforge/backend/internal/entity"
)

// Reconcile computes the status a mission should have at the given instant.
// It returns the computed status and whether it differs from the stored one,
// so the caller decides how to persist. Only draft and active missions move
// with time; paused, cancelled and completed are explicit-action states.
func Reconcile(mission *entity.Mission, now time.Time) (entity.MissionStatusType, bool) {
	status := mission.Status

	if status == entity.MissionDraft && !now.Before(mission.StartTime) {
		status = entity.MissionActive
	}

	if status == entity.MissionActive && !now.Before(mission.EndTime) {
		status = entity.MissionCompleted
	}

	return status, status != mission.Status
}

// FrozenFieldsChanged reports whether an update touches a field that is
// frozen while the mission is active.
func FrozenFieldsChanged(old *entity.Mission, new *entity.Mission) bool {
	if !old.StartTime.Equal(new.StartTime) {
		return true
	}

	if !old.EndTime.Equal(new.EndTime) {
		return true
	}

	if old.TotalPoints != new.TotalPoints {
		return true
	}

	if old.TokenAmount != new.TokenAmount {
		return true
	}

	return false
}

// CanDelete allows deletion only before the mission has ever run.
func CanDelete(status entity.MissionStatusType) bool {
	return status == entity.MissionDraft || status == entity.MissionCancelled
}

func CanCancel(status entity.MissionStatusType) bool {
	return status == entity.MissionDraft || status == entity.MissionActive
}

func CanPause(status entity.MissionStatusType) bool {
	return status == entity.MissionActive
}

func CanResume(status entity.MissionStatusType) bool {
	return status == entity.MissionPaused
}

// CanEdit reports whether the mission accepts any update at all in its
// current state. Field-level freezing on active missions is a separate check.
func CanEdit(status entity.MissionStatusType) bool {
	switch status {
	case entity.MissionDraft, entity.MissionActive, entity.MissionPaused:
		return true
	default:
		return false
	}
}
