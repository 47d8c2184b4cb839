package domain

import (
	"context"
	"errors"

	"github.com/missionforge/backend/internal/domain/statistic"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/pkg/math"
	"gorm.io/gorm"
)

type StatisticDomain interface {
	GetLeaderBoard(ctx context.Context, req *model.GetLeaderBoardRequest) (*model.GetLeaderBoardResponse, error)
}

type statisticDomain struct {
	missionRepo repository.MissionRepository
	userRepo    repository.UserRepository
	leaderboard statistic.Leaderboard
}

func NewStatisticDomain(
	missionRepo repository.MissionRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) *statisticDomain {
	return &statisticDomain{
		missionRepo: missionRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

func (d *statisticDomain) GetLeaderBoard(
	ctx context.Context, req *model.GetLeaderBoardRequest,
) (*model.GetLeaderBoardResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	req.Limit = math.MinInt(req.Limit, apiCfg.MaxLimit)

	if _, err := d.missionRepo.GetByID(ctx, req.MissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	standings, err := d.leaderboard.GetLeaderBoard(ctx, req.MissionID, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	userIDs := []string{}
	for _, s := range standings {
		userIDs = append(userIDs, s.User.ID)
	}

	if len(userIDs) > 0 {
		users, err := d.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get users of leaderboard: %v", err)
		}

		userMap := map[string]*entity.User{}
		for i := range users {
			userMap[users[i].ID] = &users[i]
		}

		for i := range standings {
			if u, ok := userMap[standings[i].User.ID]; ok {
				standings[i].User = convertUser(u)
			}
		}
	}

	return &model.GetLeaderBoardResponse{LeaderBoard: standings}, nil
}
