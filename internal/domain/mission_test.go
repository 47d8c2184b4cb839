package domain

import (
	"context"
	"testing"
	"time"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestMissionDomain() *missionDomain {
	return NewMissionDomain(
		repository.NewMissionRepository(),
		repository.NewUserRepository(),
		repository.NewAllowedTokenRepository(),
		repository.NewParticipantRepository(),
		repository.NewPayRewardRepository(),
		&testutil.MockSearchIndex{},
		&testutil.MockLeaderboard{},
	)
}

func validCreateMissionRequest() *model.CreateMissionRequest {
	return &model.CreateMissionRequest{
		Title:       "New mission",
		Summary:     "A mission",
		Category:    "social",
		TokenID:     testutil.Token1.ID,
		TokenAmount: 1000,
		TotalPoints: 1000,
		StartTime:   time.Now().Add(time.Hour).Format(defaultTimeLayout),
		EndTime:     time.Now().Add(2 * time.Hour).Format(defaultTimeLayout),
		Reward:      model.RewardConfig{Distribution: "linear", MaxWinners: 3},
	}
}

func Test_missionDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.Create(userCtx, validCreateMissionRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "draft", resp.Status)

	// A mission whose window already opened starts out active.
	req := validCreateMissionRequest()
	req.StartTime = time.Now().Add(-time.Hour).Format(defaultTimeLayout)
	resp, err = d.Create(userCtx, req)
	require.NoError(t, err)
	require.Equal(t, "active", resp.Status)
}

func Test_missionDomain_Create_validation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	req := validCreateMissionRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime
	_, err := d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Start time must be before end time"), err)

	req = validCreateMissionRequest()
	req.TotalPoints = 0
	_, err = d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Total points must be positive"), err)

	req = validCreateMissionRequest()
	req.EndTime = time.Now().Add(-time.Minute).Format(defaultTimeLayout)
	req.StartTime = time.Now().Add(-time.Hour).Format(defaultTimeLayout)
	_, err = d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "End time must be in the future"), err)

	req = validCreateMissionRequest()
	req.TaskLinks = []model.TaskLink{{Title: "Task", URL: "not-absolute", Type: "link"}}
	_, err = d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Task link url must be an absolute URL"), err)

	req = validCreateMissionRequest()
	req.TokenID = "no-such-token"
	_, err = d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Token is not allowed"), err)
}

func Test_missionDomain_Create_privilegedCreatorRule(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	// A regular creator must back the point pool with tokens.
	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	req := validCreateMissionRequest()
	req.TokenID = ""
	req.TokenAmount = 0
	_, err := d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Token amount required"), err)

	req = validCreateMissionRequest()
	req.TokenAmount = 500
	_, err = d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Total points must equal token amount"), err)

	// A privileged creator may run a points-only mission.
	privilegedCtx := testutil.MockContextWithUserID(ctx, testutil.PrivilegedUser.ID)
	req = validCreateMissionRequest()
	req.TokenID = ""
	req.TokenAmount = 0
	resp, err := d.Create(privilegedCtx, req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
}

func Test_missionDomain_Create_tieredValidation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	req := validCreateMissionRequest()
	req.Reward = model.RewardConfig{
		Distribution: "tiered",
		MaxWinners:   3,
		Tiers: []model.Tier{
			{Percentage: 50, MinRank: 1, MaxRank: 1},
			{Percentage: 30, MinRank: 2, MaxRank: 2},
		},
	}
	_, err := d.Create(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Tier percentages must sum to exactly 100, got 80"), err)

	req.Reward.Tiers = append(req.Reward.Tiers, model.Tier{Percentage: 20, MinRank: 3, MaxRank: 3})
	_, err = d.Create(userCtx, req)
	require.NoError(t, err)
}

func Test_missionDomain_Get_reconcilesStatus(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()
	missionRepo := repository.NewMissionRepository()

	// Stored as draft, but its window opened an hour ago.
	stale := &entity.Mission{
		Base:      entity.Base{ID: "stale-mission"},
		CreatedBy: testutil.User1.ID,
		Title:     "Stale",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
		Status:    entity.MissionDraft,

		TokenAmount:  1000,
		TotalPoints:  1000,
		Distribution: entity.DistributionLinear,
		MaxWinners:   1,
	}
	require.NoError(t, missionRepo.Create(ctx, stale))

	resp, err := d.Get(ctx, &model.GetMissionRequest{ID: stale.ID})
	require.NoError(t, err)
	require.Equal(t, "active", resp.Status)

	// The read also repaired the stored record.
	stored, err := missionRepo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, entity.MissionActive, stored.Status)
}

func Test_missionDomain_Get_includesCreator(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	resp, err := d.Get(ctx, &model.GetMissionRequest{ID: testutil.Mission1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.Creator.ID)
	require.Equal(t, testutil.Token1.Symbol, resp.TokenSymbol)

	_, err = d.Get(ctx, &model.GetMissionRequest{ID: "no-such-mission"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found mission"), err)
}

func Test_missionDomain_Update_frozenFields(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// Mission1 is active, its schedule and pools are frozen.
	req := &model.UpdateMissionRequest{
		ID:          testutil.Mission1.ID,
		Title:       testutil.Mission1.Title,
		Category:    testutil.Mission1.Category,
		TokenID:     testutil.Token1.ID,
		TokenAmount: testutil.Mission1.TokenAmount,
		TotalPoints: 2000,
		StartTime:   testutil.Mission1.StartTime.Format(defaultTimeLayout),
		EndTime:     testutil.Mission1.EndTime.Format(defaultTimeLayout),
		Reward:      model.RewardConfig{Distribution: "linear", MaxWinners: 3},
	}
	_, err := d.Update(userCtx, req)
	require.Equal(t, errorx.New(errorx.BadRequest, "Total points must equal token amount"), err)

	req.TotalPoints = 2000
	req.TokenAmount = 2000
	_, err = d.Update(userCtx, req)
	require.Equal(t, errorx.New(errorx.Conflict,
		"Cannot change schedule or reward pool while the mission is active"), err)

	// Editing a free field is still allowed while active.
	req.TotalPoints = testutil.Mission1.TotalPoints
	req.TokenAmount = testutil.Mission1.TokenAmount
	req.Title = "Renamed mission"
	_, err = d.Update(userCtx, req)
	require.NoError(t, err)

	resp, err := d.Get(ctx, &model.GetMissionRequest{ID: testutil.Mission1.ID})
	require.NoError(t, err)
	require.Equal(t, "Renamed mission", resp.Title)
}

func Test_missionDomain_Update_permission(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	req := &model.UpdateMissionRequest{
		ID:          testutil.Mission1.ID,
		Title:       "Hijacked",
		TokenID:     testutil.Token1.ID,
		TokenAmount: testutil.Mission1.TokenAmount,
		TotalPoints: testutil.Mission1.TotalPoints,
		StartTime:   testutil.Mission1.StartTime.Format(defaultTimeLayout),
		EndTime:     testutil.Mission1.EndTime.Format(defaultTimeLayout),
		Reward:      model.RewardConfig{Distribution: "linear", MaxWinners: 3},
	}

	// Not the creator.
	otherCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.Update(otherCtx, req)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	// An allow-listed admin address passes.
	adminCtx := testutil.MockContextWithUserID(ctx, testutil.AdminUser.ID)
	_, err = d.Update(adminCtx, req)
	require.NoError(t, err)
}

func Test_missionDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// An activated mission is never hard-deleted.
	_, err := d.Delete(userCtx, &model.DeleteMissionRequest{ID: testutil.Mission1.ID})
	require.Equal(t, errorx.New(errorx.Conflict, "Cannot delete a mission that has been activated"), err)

	// A draft can go away.
	req := validCreateMissionRequest()
	resp, err := d.Create(userCtx, req)
	require.NoError(t, err)
	require.Equal(t, "draft", resp.Status)

	_, err = d.Delete(userCtx, &model.DeleteMissionRequest{ID: resp.ID})
	require.NoError(t, err)

	_, err = d.Get(ctx, &model.GetMissionRequest{ID: resp.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found mission"), err)
}

func Test_missionDomain_CancelPauseResume(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.Pause(userCtx, &model.ChangeMissionStatusRequest{ID: testutil.Mission1.ID})
	require.NoError(t, err)
	require.Equal(t, "paused", resp.Status)

	// Paused missions do not accept a second pause.
	_, err = d.Pause(userCtx, &model.ChangeMissionStatusRequest{ID: testutil.Mission1.ID})
	require.Equal(t, errorx.New(errorx.Conflict,
		"Cannot change mission status from paused to paused"), err)

	resp, err = d.Resume(userCtx, &model.ChangeMissionStatusRequest{ID: testutil.Mission1.ID})
	require.NoError(t, err)
	require.Equal(t, "active", resp.Status)

	resp, err = d.Cancel(userCtx, &model.ChangeMissionStatusRequest{ID: testutil.Mission1.ID})
	require.NoError(t, err)
	require.Equal(t, "cancelled", resp.Status)

	// A cancelled mission never comes back through time or resume.
	_, err = d.Resume(userCtx, &model.ChangeMissionStatusRequest{ID: testutil.Mission1.ID})
	require.Equal(t, errorx.New(errorx.Conflict,
		"Cannot change mission status from cancelled to active"), err)
}

func Test_missionDomain_Finalize(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	participantRepo := repository.NewParticipantRepository()
	payRewardRepo := repository.NewPayRewardRepository()
	userRepo := repository.NewUserRepository()

	require.NoError(t, participantRepo.Create(ctx, &entity.Participant{
		UserID: testutil.User2.ID, MissionID: testutil.Mission2.ID, Points: 70,
	}))
	require.NoError(t, participantRepo.Create(ctx, &entity.Participant{
		UserID: testutil.AdminUser.ID, MissionID: testutil.Mission2.ID, Points: 30,
	}))

	d := NewMissionDomain(
		repository.NewMissionRepository(),
		userRepo,
		repository.NewAllowedTokenRepository(),
		participantRepo,
		payRewardRepo,
		&testutil.MockSearchIndex{},
		&testutil.MockLeaderboard{
			GetLeaderBoardFunc: func(_ context.Context, _ string, _, _ int) ([]model.UserStatistic, error) {
				return []model.UserStatistic{
					{User: model.User{ID: testutil.User2.ID}, Value: 70, CurrentRank: 1},
					{User: model.User{ID: testutil.AdminUser.ID}, Value: 30, CurrentRank: 2},
				}, nil
			},
		},
	)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.Finalize(userCtx, &model.FinalizeMissionRequest{ID: testutil.Mission2.ID})
	require.NoError(t, err)
	require.Len(t, resp.Winners, 2)

	// Linear over 3 winners: floor(1000/3) points and tokens each.
	for _, winner := range resp.Winners {
		require.Equal(t, uint64(333), winner.Points)
		require.Equal(t, uint64(333), winner.TokenAmount)
	}

	rewards, err := payRewardRepo.GetByMissionID(ctx, testutil.Mission2.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 2)

	user2, err := userRepo.GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(333), user2.Points)

	winnerRow, err := participantRepo.Get(ctx, testutil.User2.ID, testutil.Mission2.ID)
	require.NoError(t, err)
	require.True(t, winnerRow.IsWinner)
	require.Equal(t, 1, winnerRow.Rank)

	stored, err := repository.NewMissionRepository().GetByID(ctx, testutil.Mission2.ID)
	require.NoError(t, err)
	require.True(t, stored.Finalized)
	require.Equal(t, uint64(666), stored.PointsDistributed)
	require.Equal(t, uint64(666), stored.TokensDistributed)

	// Finalization is one-shot.
	_, err = d.Finalize(userCtx, &model.FinalizeMissionRequest{ID: testutil.Mission2.ID})
	require.Equal(t, errorx.New(errorx.Conflict, "Mission already finalized"), err)
}

func Test_missionDomain_Finalize_requiresCompleted(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestMissionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	_, err := d.Finalize(userCtx, &model.FinalizeMissionRequest{ID: testutil.Mission1.ID})
	require.Equal(t, errorx.New(errorx.Conflict, "Mission is not completed yet"), err)
}
