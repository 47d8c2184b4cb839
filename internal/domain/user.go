package domain

import (
	"context"
	"errors"
	"time"

	"github.com/missionforge/backend/internal/domain/missionstate"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	Update(ctx context.Context, req *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
}

type userDomain struct {
	userRepo        repository.UserRepository
	missionRepo     repository.MissionRepository
	participantRepo repository.ParticipantRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	missionRepo repository.MissionRepository,
	participantRepo repository.ParticipantRepository,
) *userDomain {
	return &userDomain{
		userRepo:        userRepo,
		missionRepo:     missionRepo,
		participantRepo: participantRepo,
	}
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the requester user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMeResponse{User: convertUser(user)}, nil
}

func (d *userDomain) GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetUserResponse{
		User:                 convertUser(user),
		CreatedMissions:      []model.ShortMission{},
		ParticipatedMissions: []model.ShortMission{},
		WonMissions:          []model.ShortMission{},
	}

	created, err := d.missionRepo.GetList(ctx, repository.GetListMissionFilter{
		CreatedBy: user.ID,
		Limit:     xcontext.Configs(ctx).ApiServer.MaxLimit,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get created missions: %v", err)
	}

	now := time.Now()
	for i := range created {
		status, _ := missionstate.Reconcile(&created[i], now)
		resp.CreatedMissions = append(resp.CreatedMissions, convertShortMission(&created[i], status))
	}

	participants, err := d.participantRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get participated missions: %v", err)
	}

	missionIDs := []string{}
	winnerOf := map[string]bool{}
	for _, p := range participants {
		missionIDs = append(missionIDs, p.MissionID)
		if p.IsWinner {
			winnerOf[p.MissionID] = true
		}
	}

	if len(missionIDs) > 0 {
		participated, err := d.missionRepo.GetList(ctx, repository.GetListMissionFilter{
			IDs:   missionIDs,
			Limit: len(missionIDs),
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get participated missions: %v", err)
		}

		for i := range participated {
			status, _ := missionstate.Reconcile(&participated[i], now)
			short := convertShortMission(&participated[i], status)
			resp.ParticipatedMissions = append(resp.ParticipatedMissions, short)
			if winnerOf[participated[i].ID] {
				resp.WonMissions = append(resp.WonMissions, short)
			}
		}
	}

	return resp, nil
}

func (d *userDomain) Update(ctx context.Context, req *model.UpdateUserRequest) (*model.UpdateUserResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	update := &entity.User{
		Name:     req.Name,
		Settings: req.Settings,
	}

	if err := d.userRepo.UpdateByID(ctx, userID, update); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "This username is already taken")
		}

		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{}, nil
}
