package repository

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
)

type PayRewardRepository interface {
	Create(ctx context.Context, reward *entity.PayReward) error
	GetByMissionID(ctx context.Context, missionID string) ([]entity.PayReward, error)
}

type payRewardRepository struct{}

func NewPayRewardRepository() PayRewardRepository {
	return &payRewardRepository{}
}

func (r *payRewardRepository) Create(ctx context.Context, reward *entity.PayReward) error {
	return xcontext.DB(ctx).Create(reward).Error
}

func (r *payRewardRepository) GetByMissionID(
	ctx context.Context, missionID string,
) ([]entity.PayReward, error) {
	result := []entity.PayReward{}
	if err := xcontext.DB(ctx).Find(&result, "mission_id=?", missionID).Error; err != nil {
		return nil, err
	}

	return result, nil
}
