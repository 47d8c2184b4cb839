package repository

import (
	"context"
	"fmt"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
)

type GetListSubmissionFilter struct {
	MissionID string
	UserID    string
	Status    []entity.SubmissionStatusType
	Offset    int
	Limit     int
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	Get(ctx context.Context, missionID, userID string) (*entity.Submission, error)
	GetList(ctx context.Context, filter GetListSubmissionFilter) ([]entity.Submission, error)
	UpdateReviewByID(ctx context.Context, id string, data *entity.Submission) error
	Count(ctx context.Context, missionID string, status []entity.SubmissionStatusType) (int64, error)
}

type submissionRepository struct{}

func NewSubmissionRepository() SubmissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	return xcontext.DB(ctx).Create(submission).Error
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	var result entity.Submission
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) Get(
	ctx context.Context, missionID, userID string,
) (*entity.Submission, error) {
	var result entity.Submission
	if err := xcontext.DB(ctx).
		Take(&result, "mission_id=? AND user_id=?", missionID, userID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) GetList(
	ctx context.Context, filter GetListSubmissionFilter,
) ([]entity.Submission, error) {
	result := []entity.Submission{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("created_at ASC")

	if filter.MissionID != "" {
		tx = tx.Where("mission_id=?", filter.MissionID)
	}

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *submissionRepository) UpdateReviewByID(
	ctx context.Context, id string, data *entity.Submission,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Submission{}).
		Where("id=?", id).
		Updates(data)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected != 1 {
		return fmt.Errorf("update review did not exec correctly")
	}

	return nil
}

func (r *submissionRepository) Count(
	ctx context.Context, missionID string, status []entity.SubmissionStatusType,
) (int64, error) {
	var count int64
	tx := xcontext.DB(ctx).
		Model(&entity.Submission{}).
		Where("mission_id=?", missionID)

	if len(status) > 0 {
		tx = tx.Where("status IN (?)", status)
	}

	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
