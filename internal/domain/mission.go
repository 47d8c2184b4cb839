package domain

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/missionforge/backend/internal/common"
	"github.com/missionforge/backend/internal/domain/missionreward"
	"github.com/missionforge/backend/internal/domain/missionstate"
	"github.com/missionforge/backend/internal/domain/search"
	"github.com/missionforge/backend/internal/domain/statistic"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/enum"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type MissionDomain interface {
	Create(ctx context.Context, req *model.CreateMissionRequest) (*model.CreateMissionResponse, error)
	Get(ctx context.Context, req *model.GetMissionRequest) (*model.GetMissionResponse, error)
	GetList(ctx context.Context, req *model.GetListMissionRequest) (*model.GetListMissionResponse, error)
	Update(ctx context.Context, req *model.UpdateMissionRequest) (*model.UpdateMissionResponse, error)
	Delete(ctx context.Context, req *model.DeleteMissionRequest) (*model.DeleteMissionResponse, error)
	Cancel(ctx context.Context, req *model.ChangeMissionStatusRequest) (*model.ChangeMissionStatusResponse, error)
	Pause(ctx context.Context, req *model.ChangeMissionStatusRequest) (*model.ChangeMissionStatusResponse, error)
	Resume(ctx context.Context, req *model.ChangeMissionStatusRequest) (*model.ChangeMissionStatusResponse, error)
	Finalize(ctx context.Context, req *model.FinalizeMissionRequest) (*model.FinalizeMissionResponse, error)
}

type missionDomain struct {
	missionRepo      repository.MissionRepository
	userRepo         repository.UserRepository
	allowedTokenRepo repository.AllowedTokenRepository
	participantRepo  repository.ParticipantRepository
	payRewardRepo    repository.PayRewardRepository
	roleVerifier     *common.MissionRoleVerifier
	searchIndex      search.Index
	leaderboard      statistic.Leaderboard
}

func NewMissionDomain(
	missionRepo repository.MissionRepository,
	userRepo repository.UserRepository,
	allowedTokenRepo repository.AllowedTokenRepository,
	participantRepo repository.ParticipantRepository,
	payRewardRepo repository.PayRewardRepository,
	searchIndex search.Index,
	leaderboard statistic.Leaderboard,
) *missionDomain {
	return &missionDomain{
		missionRepo:      missionRepo,
		userRepo:         userRepo,
		allowedTokenRepo: allowedTokenRepo,
		participantRepo:  participantRepo,
		payRewardRepo:    payRewardRepo,
		roleVerifier:     common.NewMissionRoleVerifier(userRepo),
		searchIndex:      searchIndex,
		leaderboard:      leaderboard,
	}
}

func (d *missionDomain) Create(
	ctx context.Context, req *model.CreateMissionRequest,
) (*model.CreateMissionResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the creator user: %v", err)
		return nil, errorx.Unknown
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Title is required")
	}

	startTime, endTime, err := parseMissionWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !endTime.After(now) {
		return nil, errorx.New(errorx.BadRequest, "End time must be in the future")
	}

	if req.TotalPoints == 0 {
		return nil, errorx.New(errorx.BadRequest, "Total points must be positive")
	}

	if !common.IsPrivilegedCreator(ctx, user.Address) {
		if req.TokenAmount == 0 {
			return nil, errorx.New(errorx.BadRequest, "Token amount required")
		}

		if req.TotalPoints != req.TokenAmount {
			return nil, errorx.New(errorx.BadRequest, "Total points must equal token amount")
		}
	}

	tokenID := sql.NullString{}
	if req.TokenAmount > 0 {
		token, err := d.requireActiveToken(ctx, req.TokenID)
		if err != nil {
			return nil, err
		}

		tokenID = sql.NullString{Valid: true, String: token.ID}
	}

	if err := validateTaskLinks(ctx, req.TaskLinks); err != nil {
		return nil, err
	}

	distribution, tiers, err := validateReward(ctx, req.Reward)
	if err != nil {
		return nil, err
	}

	status := entity.MissionDraft
	if !now.Before(startTime) {
		status = entity.MissionActive
	}

	mission := &entity.Mission{
		Base:        entity.Base{ID: uuid.NewString()},
		CreatedBy:   userID,
		Title:       req.Title,
		Summary:     req.Summary,
		Description: []byte(req.Description),
		Category:    req.Category,
		Tags:        req.Tags,

		TokenID:     tokenID,
		TokenAmount: req.TokenAmount,
		TotalPoints: req.TotalPoints,

		StartTime: startTime,
		EndTime:   endTime,
		Status:    status,

		TaskLinks:   toEntityTaskLinks(req.TaskLinks),
		SocialLinks: toEntitySocialLinks(req.SocialLinks),

		Distribution: distribution,
		MaxWinners:   req.Reward.MaxWinners,
		Tiers:        tiers,
	}

	if err := d.missionRepo.Create(ctx, mission); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create mission: %v", err)
		return nil, errorx.Unknown
	}

	err = d.searchIndex.IndexMission(ctx, mission.ID, search.MissionData{
		Title:       mission.Title,
		Description: string(mission.Description),
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot index mission %s: %v", mission.ID, err)
	}

	return &model.CreateMissionResponse{ID: mission.ID, Status: enum.ToString(status)}, nil
}

func (d *missionDomain) Get(
	ctx context.Context, req *model.GetMissionRequest,
) (*model.GetMissionResponse, error) {
	mission, err := d.missionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	status := d.reconcileStatus(ctx, mission)

	creator, err := d.userRepo.GetByID(ctx, mission.CreatedBy)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get mission creator: %v", err)
	}

	var token *entity.AllowedToken
	if mission.TokenID.Valid {
		token, err = d.allowedTokenRepo.GetByID(ctx, mission.TokenID.String)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get mission token: %v", err)
		}
	}

	return &model.GetMissionResponse{
		Mission: convertMission(mission, status, creator, token),
	}, nil
}

func (d *missionDomain) GetList(
	ctx context.Context, req *model.GetListMissionRequest,
) (*model.GetListMissionResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	var statusFilter entity.MissionStatusType
	if req.Status != "" {
		status, err := enum.ToEnum[entity.MissionStatusType](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid mission status %s", req.Status)
		}

		statusFilter = status
	}

	filter := repository.GetListMissionFilter{
		Category:  req.Category,
		Status:    statusFilter,
		CreatedBy: req.CreatedBy,
		Offset:    req.Offset,
		Limit:     req.Limit,
	}

	if req.Q != "" {
		ids, err := d.searchIndex.SearchMission(ctx, req.Q, req.Offset, req.Limit)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot search missions: %v", err)
			return nil, errorx.Unknown
		}

		if len(ids) == 0 {
			return &model.GetListMissionResponse{Missions: []model.Mission{}}, nil
		}

		// The search already applied offset and limit.
		filter.IDs = ids
		filter.Offset = 0
	}

	missions, err := d.missionRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mission list: %v", err)
		return nil, errorx.Unknown
	}

	creatorIDs := []string{}
	for i := range missions {
		creatorIDs = append(creatorIDs, missions[i].CreatedBy)
	}

	creatorMap := map[string]*entity.User{}
	if len(creatorIDs) > 0 {
		creators, err := d.userRepo.GetByIDs(ctx, creatorIDs)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get mission creators: %v", err)
		}

		for i := range creators {
			creatorMap[creators[i].ID] = &creators[i]
		}
	}

	result := []model.Mission{}
	for i := range missions {
		status := d.reconcileStatus(ctx, &missions[i])

		// Rows fetched by stored status may have moved on since the
		// write, drop the ones the filter no longer matches.
		if statusFilter != "" && status != statusFilter {
			continue
		}

		result = append(result, convertMission(&missions[i], status, creatorMap[missions[i].CreatedBy], nil))
	}

	return &model.GetListMissionResponse{Missions: result}, nil
}

func (d *missionDomain) Update(
	ctx context.Context, req *model.UpdateMissionRequest,
) (*model.UpdateMissionResponse, error) {
	mission, err := d.missionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating mission: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if mission.Finalized {
		return nil, errorx.New(errorx.Conflict, "Cannot edit a finalized mission")
	}

	status := d.reconcileStatus(ctx, mission)
	if !missionstate.CanEdit(status) {
		return nil, errorx.New(errorx.Conflict, "Mission can no longer be edited")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Title is required")
	}

	startTime, endTime, err := parseMissionWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if req.TotalPoints == 0 {
		return nil, errorx.New(errorx.BadRequest, "Total points must be positive")
	}

	creator, err := d.userRepo.GetByID(ctx, mission.CreatedBy)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the creator user: %v", err)
		return nil, errorx.Unknown
	}

	if !common.IsPrivilegedCreator(ctx, creator.Address) {
		if req.TokenAmount == 0 {
			return nil, errorx.New(errorx.BadRequest, "Token amount required")
		}

		if req.TotalPoints != req.TokenAmount {
			return nil, errorx.New(errorx.BadRequest, "Total points must equal token amount")
		}
	}

	tokenID := sql.NullString{}
	if req.TokenAmount > 0 {
		if req.TokenID == "" && mission.TokenID.Valid {
			req.TokenID = mission.TokenID.String
		}

		token, err := d.requireActiveToken(ctx, req.TokenID)
		if err != nil {
			return nil, err
		}

		tokenID = sql.NullString{Valid: true, String: token.ID}
	}

	if err := validateTaskLinks(ctx, req.TaskLinks); err != nil {
		return nil, err
	}

	distribution, tiers, err := validateReward(ctx, req.Reward)
	if err != nil {
		return nil, err
	}

	updated := &entity.Mission{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: []byte(req.Description),
		Category:    req.Category,
		Tags:        req.Tags,

		TokenID:     tokenID,
		TokenAmount: req.TokenAmount,
		TotalPoints: req.TotalPoints,

		StartTime: startTime,
		EndTime:   endTime,

		TaskLinks:   toEntityTaskLinks(req.TaskLinks),
		SocialLinks: toEntitySocialLinks(req.SocialLinks),

		Distribution: distribution,
		MaxWinners:   req.Reward.MaxWinners,
		Tiers:        tiers,
	}

	if status == entity.MissionActive && missionstate.FrozenFieldsChanged(mission, updated) {
		return nil, errorx.New(errorx.Conflict,
			"Cannot change schedule or reward pool while the mission is active")
	}

	if err := d.missionRepo.UpdateByID(ctx, mission.ID, updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update mission: %v", err)
		return nil, errorx.Unknown
	}

	err = d.searchIndex.IndexMission(ctx, mission.ID, search.MissionData{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot reindex mission %s: %v", mission.ID, err)
	}

	return &model.UpdateMissionResponse{}, nil
}

func (d *missionDomain) Delete(
	ctx context.Context, req *model.DeleteMissionRequest,
) (*model.DeleteMissionResponse, error) {
	mission, err := d.missionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting mission: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	status := d.reconcileStatus(ctx, mission)
	if !missionstate.CanDelete(status) {
		return nil, errorx.New(errorx.Conflict, "Cannot delete a mission that has been activated")
	}

	if err := d.missionRepo.DeleteByID(ctx, mission.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete mission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.searchIndex.DeleteMission(ctx, mission.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot remove mission %s from index: %v", mission.ID, err)
	}

	return &model.DeleteMissionResponse{}, nil
}

func (d *missionDomain) Cancel(
	ctx context.Context, req *model.ChangeMissionStatusRequest,
) (*model.ChangeMissionStatusResponse, error) {
	return d.changeStatus(ctx, req.ID, entity.MissionCancelled)
}

func (d *missionDomain) Pause(
	ctx context.Context, req *model.ChangeMissionStatusRequest,
) (*model.ChangeMissionStatusResponse, error) {
	return d.changeStatus(ctx, req.ID, entity.MissionPaused)
}

func (d *missionDomain) Resume(
	ctx context.Context, req *model.ChangeMissionStatusRequest,
) (*model.ChangeMissionStatusResponse, error) {
	return d.changeStatus(ctx, req.ID, entity.MissionActive)
}

func (d *missionDomain) changeStatus(
	ctx context.Context, missionID string, target entity.MissionStatusType,
) (*model.ChangeMissionStatusResponse, error) {
	mission, err := d.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when changing mission status: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	status := d.reconcileStatus(ctx, mission)

	var allowed bool
	switch target {
	case entity.MissionCancelled:
		allowed = missionstate.CanCancel(status)
	case entity.MissionPaused:
		allowed = missionstate.CanPause(status)
	case entity.MissionActive:
		allowed = missionstate.CanResume(status)
		if allowed && !time.Now().Before(mission.EndTime) {
			return nil, errorx.New(errorx.Conflict, "Mission window already ended")
		}
	}

	if !allowed {
		return nil, errorx.New(errorx.Conflict,
			"Cannot change mission status from %s to %s", status, target)
	}

	if err := d.missionRepo.UpdateStatusByID(ctx, mission.ID, target); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change mission status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ChangeMissionStatusResponse{Status: enum.ToString(target)}, nil
}

func (d *missionDomain) Finalize(
	ctx context.Context, req *model.FinalizeMissionRequest,
) (*model.FinalizeMissionResponse, error) {
	mission, err := d.missionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when finalizing mission: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if mission.Finalized {
		return nil, errorx.New(errorx.Conflict, "Mission already finalized")
	}

	status := d.reconcileStatus(ctx, mission)
	if status != entity.MissionCompleted {
		return nil, errorx.New(errorx.Conflict, "Mission is not completed yet")
	}

	calculator, err := missionreward.New(
		ctx, mission.Distribution, mission.MaxWinners, mission.Tiers, true)
	if err != nil {
		return nil, err
	}

	depth := mission.MaxWinners
	if ranked, ok := calculator.(interface{ MaxRank() int }); ok {
		depth = ranked.MaxRank()
	}

	ranking, err := d.leaderboard.GetLeaderBoard(ctx, mission.ID, 0, depth)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	winners := []model.MissionWinner{}
	var distributedPoints, distributedTokens uint64
	for i, standing := range ranking {
		rank := i + 1
		points := calculator.Amount(mission.TotalPoints, rank)

		var tokens uint64
		if mission.TokenAmount > 0 {
			tokens = calculator.Amount(mission.TokenAmount, rank)
		}

		if points == 0 && tokens == 0 {
			continue
		}

		err := d.participantRepo.SetWinner(ctx, standing.User.ID, mission.ID, rank, points)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot set winner for %s: %v", standing.User.ID, err)
			return nil, errorx.Unknown
		}

		if points > 0 {
			if err := d.userRepo.IncreasePoints(ctx, standing.User.ID, points); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot award points to %s: %v", standing.User.ID, err)
				return nil, errorx.Unknown
			}
		}

		err = d.payRewardRepo.Create(ctx, &entity.PayReward{
			Base:        entity.Base{ID: uuid.NewString()},
			MissionID:   mission.ID,
			UserID:      standing.User.ID,
			TokenID:     mission.TokenID,
			TokenAmount: tokens,
			Points:      points,
			Status:      entity.PayRewardPending,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create pay reward for %s: %v", standing.User.ID, err)
			return nil, errorx.Unknown
		}

		distributedPoints += points
		distributedTokens += tokens
		winners = append(winners, model.MissionWinner{
			UserID:      standing.User.ID,
			Rank:        rank,
			Points:      points,
			TokenAmount: tokens,
		})
	}

	err = d.missionRepo.UpdateByID(ctx, mission.ID, &entity.Mission{
		Status:            entity.MissionCompleted,
		PointsDistributed: distributedPoints,
		TokensDistributed: distributedTokens,
		Finalized:         true,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot finalize mission: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.FinalizeMissionResponse{Winners: winners}, nil
}

// reconcileStatus lazily moves a mission along the time-driven part of its
// lifecycle. The persistence write is best-effort: if it fails, the caller
// still sees the computed status and the next read retries the write.
func (d *missionDomain) reconcileStatus(
	ctx context.Context, mission *entity.Mission,
) entity.MissionStatusType {
	status, dirty := missionstate.Reconcile(mission, time.Now())
	if dirty {
		if err := d.missionRepo.UpdateStatusByID(ctx, mission.ID, status); err != nil {
			xcontext.Logger(ctx).Warnf(
				"Cannot persist reconciled status of mission %s: %v", mission.ID, err)
		}

		mission.Status = status
	}

	return status
}

func (d *missionDomain) requireActiveToken(
	ctx context.Context, tokenID string,
) (*entity.AllowedToken, error) {
	if tokenID == "" {
		return nil, errorx.New(errorx.BadRequest, "Token is required for a token reward")
	}

	token, err := d.allowedTokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Token is not allowed")
		}

		xcontext.Logger(ctx).Errorf("Cannot get allowed token: %v", err)
		return nil, errorx.Unknown
	}

	if !token.Active {
		return nil, errorx.New(errorx.BadRequest, "Token is not allowed")
	}

	return token, nil
}

func parseMissionWindow(start, end string) (time.Time, time.Time, error) {
	startTime, err := time.Parse(defaultTimeLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, errorx.New(errorx.BadRequest, "Invalid start time")
	}

	endTime, err := time.Parse(defaultTimeLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, errorx.New(errorx.BadRequest, "Invalid end time")
	}

	if !startTime.Before(endTime) {
		return time.Time{}, time.Time{}, errorx.New(errorx.BadRequest,
			"Start time must be before end time")
	}

	return startTime, endTime, nil
}

func validateTaskLinks(ctx context.Context, links []model.TaskLink) error {
	maxLinks := xcontext.Configs(ctx).Mission.MaxTaskLinks
	if len(links) > maxLinks {
		return errorx.New(errorx.BadRequest, "Exceed the maximum of task links (%d)", maxLinks)
	}

	for _, link := range links {
		if link.Title == "" {
			return errorx.New(errorx.BadRequest, "Task link title is required")
		}

		if link.Type == "" {
			return errorx.New(errorx.BadRequest, "Task link type is required")
		}

		if _, err := url.ParseRequestURI(link.URL); err != nil {
			return errorx.New(errorx.BadRequest, "Task link url must be an absolute URL")
		}
	}

	return nil
}

func validateReward(
	ctx context.Context, reward model.RewardConfig,
) (entity.DistributionType, []entity.Tier, error) {
	distribution, err := enum.ToEnum[entity.DistributionType](reward.Distribution)
	if err != nil {
		return "", nil, errorx.New(errorx.BadRequest,
			"Invalid distribution type %s", reward.Distribution)
	}

	tiers := toEntityTiers(reward.Tiers)
	if _, err := missionreward.New(ctx, distribution, reward.MaxWinners, tiers, true); err != nil {
		return "", nil, err
	}

	return distribution, tiers, nil
}

func toEntityTiers(modelTiers []model.Tier) []entity.Tier {
	tiers := []entity.Tier{}
	for _, t := range modelTiers {
		tiers = append(tiers, entity.Tier(t))
	}
	return tiers
}

func toEntityTaskLinks(modelLinks []model.TaskLink) []entity.TaskLink {
	links := []entity.TaskLink{}
	for _, l := range modelLinks {
		links = append(links, entity.TaskLink(l))
	}
	return links
}

func toEntitySocialLinks(modelLinks []model.SocialLink) []entity.SocialLink {
	links := []entity.SocialLink{}
	for _, l := range modelLinks {
		links = append(links, entity.SocialLink(l))
	}
	return links
}
