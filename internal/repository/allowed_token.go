package repository

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
)

type AllowedTokenRepository interface {
	Create(ctx context.Context, token *entity.AllowedToken) error
	GetByID(ctx context.Context, id string) (*entity.AllowedToken, error)
	GetActiveList(ctx context.Context) ([]entity.AllowedToken, error)
	Deactivate(ctx context.Context, id string) error
}

type allowedTokenRepository struct{}

func NewAllowedTokenRepository() AllowedTokenRepository {
	return &allowedTokenRepository{}
}

func (r *allowedTokenRepository) Create(ctx context.Context, token *entity.AllowedToken) error {
	return xcontext.DB(ctx).Create(token).Error
}

func (r *allowedTokenRepository) GetByID(ctx context.Context, id string) (*entity.AllowedToken, error) {
	var result entity.AllowedToken
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *allowedTokenRepository) GetActiveList(ctx context.Context) ([]entity.AllowedToken, error) {
	result := []entity.AllowedToken{}
	if err := xcontext.DB(ctx).Find(&result, "active=?", true).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *allowedTokenRepository) Deactivate(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Model(&entity.AllowedToken{}).
		Where("id=?", id).
		Update("active", false).Error
}
