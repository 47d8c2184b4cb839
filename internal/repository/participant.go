package repository

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	Get(ctx context.Context, userID, missionID string) (*entity.Participant, error)
	GetByMissionID(ctx context.Context, missionID string) ([]entity.Participant, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Participant, error)
	IncreasePoints(ctx context.Context, userID, missionID string, points uint64) error
	SetWinner(ctx context.Context, userID, missionID string, rank int, points uint64) error
}

type participantRepository struct{}

func NewParticipantRepository() ParticipantRepository {
	return &participantRepository{}
}

func (r *participantRepository) Create(ctx context.Context, participant *entity.Participant) error {
	return xcontext.DB(ctx).Create(participant).Error
}

func (r *participantRepository) Get(
	ctx context.Context, userID, missionID string,
) (*entity.Participant, error) {
	var result entity.Participant
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND mission_id=?", userID, missionID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantRepository) GetByMissionID(
	ctx context.Context, missionID string,
) ([]entity.Participant, error) {
	result := []entity.Participant{}
	err := xcontext.DB(ctx).
		Where("mission_id=?", missionID).
		Order("points DESC, created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *participantRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.Participant, error) {
	result := []entity.Participant{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *participantRepository) IncreasePoints(
	ctx context.Context, userID, missionID string, points uint64,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Participant{}).
		Where("user_id=? AND mission_id=?", userID, missionID).
		Update("points", gorm.Expr("points+?", points))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *participantRepository) SetWinner(
	ctx context.Context, userID, missionID string, rank int, points uint64,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Participant{}).
		Where("user_id=? AND mission_id=?", userID, missionID).
		Updates(map[string]any{
			"is_winner": true,
			"rank":      rank,
			"points":    gorm.Expr("points+?", points),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
