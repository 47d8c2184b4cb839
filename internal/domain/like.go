package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type LikeDomain interface {
	Toggle(ctx context.Context, req *model.ToggleLikeRequest) (*model.ToggleLikeResponse, error)
	GetLikes(ctx context.Context, req *model.GetLikesRequest) (*model.GetLikesResponse, error)
}

type likeDomain struct {
	likeRepo       repository.LikeRepository
	missionRepo    repository.MissionRepository
	submissionRepo repository.SubmissionRepository
	snowflakeNode  *snowflake.Node
}

func NewLikeDomain(
	likeRepo repository.LikeRepository,
	missionRepo repository.MissionRepository,
	submissionRepo repository.SubmissionRepository,
) *likeDomain {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	return &likeDomain{
		likeRepo:       likeRepo,
		missionRepo:    missionRepo,
		submissionRepo: submissionRepo,
		snowflakeNode:  node,
	}
}

func (d *likeDomain) Toggle(
	ctx context.Context, req *model.ToggleLikeRequest,
) (*model.ToggleLikeResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	targetType, err := d.verifyTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	liked := false
	_, err = d.likeRepo.Get(ctx, userID, targetType, req.TargetID)
	switch {
	case err == nil:
		if err := d.likeRepo.Delete(ctx, userID, targetType, req.TargetID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
			return nil, errorx.Unknown
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		err := d.likeRepo.Create(ctx, &entity.Like{
			ID:         d.snowflakeNode.Generate().Int64(),
			UserID:     userID,
			TargetType: targetType,
			TargetID:   req.TargetID,
		})
		if err != nil {
			// A concurrent toggle won the insert. The like exists, which
			// is what this request wanted, so report it as such.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
				return nil, errorx.Unknown
			}
		}

		liked = true

	default:
		xcontext.Logger(ctx).Errorf("Cannot get like: %v", err)
		return nil, errorx.Unknown
	}

	// The tally is always recomputed from the rows, never cached.
	count, err := d.likeRepo.Count(ctx, targetType, req.TargetID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ToggleLikeResponse{Liked: liked, Count: count}, nil
}

func (d *likeDomain) GetLikes(
	ctx context.Context, req *model.GetLikesRequest,
) (*model.GetLikesResponse, error) {
	targetType, err := d.verifyTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	count, err := d.likeRepo.Count(ctx, targetType, req.TargetID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetLikesResponse{Count: count}

	// Only authenticated callers get their own liked flag.
	if userID := xcontext.RequestUserID(ctx); userID != "" {
		_, err := d.likeRepo.Get(ctx, userID, targetType, req.TargetID)
		if err == nil {
			resp.UserHasLiked = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Cannot get like of requester: %v", err)
		}
	}

	return resp, nil
}

func (d *likeDomain) verifyTarget(
	ctx context.Context, rawTargetType, targetID string,
) (entity.LikeTargetType, error) {
	if targetID == "" {
		return "", errorx.New(errorx.BadRequest, "Target id is required")
	}

	switch entity.LikeTargetType(rawTargetType) {
	case entity.LikeTargetMission:
		if _, err := d.missionRepo.GetByID(ctx, targetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", errorx.New(errorx.NotFound, "Not found mission")
			}

			xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
			return "", errorx.Unknown
		}

		return entity.LikeTargetMission, nil

	case entity.LikeTargetSubmission:
		if _, err := d.submissionRepo.GetByID(ctx, targetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", errorx.New(errorx.NotFound, "Not found submission")
			}

			xcontext.Logger(ctx).Errorf("Cannot get submission: %v", err)
			return "", errorx.Unknown
		}

		return entity.LikeTargetSubmission, nil

	default:
		return "", errorx.New(errorx.BadRequest, "Invalid target type %s", rawTargetType)
	}
}
