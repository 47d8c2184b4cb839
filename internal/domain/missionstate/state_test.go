package missionstate

import (
	"testing"
	"time"

	"github.com/missionforge/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_Reconcile(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		stored    entity.MissionStatusType
		startTime time.Time
		endTime   time.Time
		want      entity.MissionStatusType
		wantDirty bool
	}{
		{
			name:      "draft stays draft before the window",
			stored:    entity.MissionDraft,
			startTime: now.Add(time.Hour),
			endTime:   now.Add(2 * time.Hour),
			want:      entity.MissionDraft,
			wantDirty: false,
		},
		{
			name:      "draft activates when the window opens",
			stored:    entity.MissionDraft,
			startTime: now.Add(-time.Minute),
			endTime:   now.Add(time.Hour),
			want:      entity.MissionActive,
			wantDirty: true,
		},
		{
			name:      "active completes when the window closes",
			stored:    entity.MissionActive,
			startTime: now.Add(-2 * time.Hour),
			endTime:   now.Add(-time.Hour),
			want:      entity.MissionCompleted,
			wantDirty: true,
		},
		{
			name:      "stale draft moves through to completed",
			stored:    entity.MissionDraft,
			startTime: now.Add(-2 * time.Hour),
			endTime:   now.Add(-time.Hour),
			want:      entity.MissionCompleted,
			wantDirty: true,
		},
		{
			name:      "paused never moves with time",
			stored:    entity.MissionPaused,
			startTime: now.Add(-2 * time.Hour),
			endTime:   now.Add(-time.Hour),
			want:      entity.MissionPaused,
			wantDirty: false,
		},
		{
			name:      "cancelled never moves with time",
			stored:    entity.MissionCancelled,
			startTime: now.Add(-time.Hour),
			endTime:   now.Add(time.Hour),
			want:      entity.MissionCancelled,
			wantDirty: false,
		},
		{
			name:      "active stays active inside the window",
			stored:    entity.MissionActive,
			startTime: now.Add(-time.Hour),
			endTime:   now.Add(time.Hour),
			want:      entity.MissionActive,
			wantDirty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mission := &entity.Mission{
				Status:    tt.stored,
				StartTime: tt.startTime,
				EndTime:   tt.endTime,
			}

			got, dirty := Reconcile(mission, now)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantDirty, dirty)
		})
	}
}

func Test_FrozenFieldsChanged(t *testing.T) {
	now := time.Now()
	old := &entity.Mission{
		StartTime:   now,
		EndTime:     now.Add(time.Hour),
		TotalPoints: 1000,
		TokenAmount: 1000,
	}

	same := &entity.Mission{
		Title:       "a different title is fine",
		StartTime:   now,
		EndTime:     now.Add(time.Hour),
		TotalPoints: 1000,
		TokenAmount: 1000,
	}
	require.False(t, FrozenFieldsChanged(old, same))

	movedStart := *same
	movedStart.StartTime = now.Add(time.Minute)
	require.True(t, FrozenFieldsChanged(old, &movedStart))

	movedEnd := *same
	movedEnd.EndTime = now.Add(2 * time.Hour)
	require.True(t, FrozenFieldsChanged(old, &movedEnd))

	changedPoints := *same
	changedPoints.TotalPoints = 2000
	require.True(t, FrozenFieldsChanged(old, &changedPoints))

	changedTokens := *same
	changedTokens.TokenAmount = 2000
	require.True(t, FrozenFieldsChanged(old, &changedTokens))
}
