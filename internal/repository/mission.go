package repository

import (
	"context"
	"errors"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GetListMissionFilter struct {
	IDs       []string
	Category  string
	Status    entity.MissionStatusType
	CreatedBy string
	Offset    int
	Limit     int
}

type MissionRepository interface {
	Create(ctx context.Context, mission *entity.Mission) error
	GetByID(ctx context.Context, id string) (*entity.Mission, error)
	GetList(ctx context.Context, filter GetListMissionFilter) ([]entity.Mission, error)
	UpdateByID(ctx context.Context, id string, mission *entity.Mission) error
	UpdateStatusByID(ctx context.Context, id string, status entity.MissionStatusType) error
	DeleteByID(ctx context.Context, id string) error
	IncreaseParticipants(ctx context.Context, id string) error
}

type missionRepository struct{}

func NewMissionRepository() MissionRepository {
	return &missionRepository{}
}

func (r *missionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	return xcontext.DB(ctx).Create(mission).Error
}

func (r *missionRepository) GetByID(ctx context.Context, id string) (*entity.Mission, error) {
	var result entity.Mission
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *missionRepository) GetList(
	ctx context.Context, filter GetListMissionFilter,
) ([]entity.Mission, error) {
	result := []entity.Mission{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("created_at DESC")

	if len(filter.IDs) > 0 {
		tx = tx.Where("id IN (?)", filter.IDs)
	}

	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.CreatedBy != "" {
		tx = tx.Where("created_by=?", filter.CreatedBy)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *missionRepository) UpdateByID(
	ctx context.Context, id string, mission *entity.Mission,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Mission{}).
		Where("id=?", id).
		Updates(mission).Error
}

func (r *missionRepository) UpdateStatusByID(
	ctx context.Context, id string, status entity.MissionStatusType,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Mission{}).
		Where("id=?", id).
		Update("status", status)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *missionRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Mission{}, "id=?", id).Error
}

func (r *missionRepository) IncreaseParticipants(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Mission{}).
		Where("id=?", id).
		Update("participants", gorm.Expr("participants+1"))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
