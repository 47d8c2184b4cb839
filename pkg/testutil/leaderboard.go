package testutil

import (
	"context"

	"github.com/missionforge/backend/internal/model"
)

type MockLeaderboard struct {
	GetLeaderBoardFunc         func(ctx context.Context, missionID string, offset, limit int) ([]model.UserStatistic, error)
	GetRankFunc                func(ctx context.Context, userID, missionID string) (uint64, error)
	ChangePointLeaderboardFunc func(ctx context.Context, value int64, userID, missionID string) error
}

func (m *MockLeaderboard) GetLeaderBoard(
	ctx context.Context, missionID string, offset, limit int,
) ([]model.UserStatistic, error) {
	if m.GetLeaderBoardFunc != nil {
		return m.GetLeaderBoardFunc(ctx, missionID, offset, limit)
	}

	return nil, nil
}

func (m *MockLeaderboard) GetRank(ctx context.Context, userID, missionID string) (uint64, error) {
	if m.GetRankFunc != nil {
		return m.GetRankFunc(ctx, userID, missionID)
	}

	return 0, nil
}

func (m *MockLeaderboard) ChangePointLeaderboard(
	ctx context.Context, value int64, userID, missionID string,
) error {
	if m.ChangePointLeaderboardFunc != nil {
		return m.ChangePointLeaderboardFunc(ctx, value, userID, missionID)
	}

	return nil
}
