package repository

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
)

type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Get(ctx context.Context, userID string, targetType entity.LikeTargetType, targetID string) (*entity.Like, error)
	Delete(ctx context.Context, userID string, targetType entity.LikeTargetType, targetID string) error
	Count(ctx context.Context, targetType entity.LikeTargetType, targetID string) (int64, error)
}

type likeRepository struct{}

func NewLikeRepository() LikeRepository {
	return &likeRepository{}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *likeRepository) Get(
	ctx context.Context, userID string, targetType entity.LikeTargetType, targetID string,
) (*entity.Like, error) {
	var result entity.Like
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND target_type=? AND target_id=?", userID, targetType, targetID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *likeRepository) Delete(
	ctx context.Context, userID string, targetType entity.LikeTargetType, targetID string,
) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND target_type=? AND target_id=?", userID, targetType, targetID).
		Delete(&entity.Like{}).Error
}

// Count is a plain tally over the table. It is recomputed on every call on
// purpose; a denormalized counter would need its own consistency story.
func (r *likeRepository) Count(
	ctx context.Context, targetType entity.LikeTargetType, targetID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Like{}).
		Where("target_type=? AND target_id=?", targetType, targetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
