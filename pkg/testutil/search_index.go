package testutil

import (
	"context"

	"github.com/missionforge/backend/internal/domain/search"
)

type MockSearchIndex struct {
	IndexMissionFunc  func(ctx context.Context, id string, data search.MissionData) error
	DeleteMissionFunc func(ctx context.Context, id string) error
	SearchMissionFunc func(ctx context.Context, query string, offset, limit int) ([]string, error)
}

func (m *MockSearchIndex) IndexMission(ctx context.Context, id string, data search.MissionData) error {
	if m.IndexMissionFunc != nil {
		return m.IndexMissionFunc(ctx, id, data)
	}

	return nil
}

func (m *MockSearchIndex) DeleteMission(ctx context.Context, id string) error {
	if m.DeleteMissionFunc != nil {
		return m.DeleteMissionFunc(ctx, id)
	}

	return nil
}

func (m *MockSearchIndex) SearchMission(
	ctx context.Context, query string, offset, limit int,
) ([]string, error) {
	if m.SearchMissionFunc != nil {
		return m.SearchMissionFunc(ctx, query, offset, limit)
	}

	return nil, nil
}

func (m *MockSearchIndex) Close() {}
