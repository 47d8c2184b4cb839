package domain

import (
	"context"
	"testing"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestSubmissionDomain(leaderboard *testutil.MockLeaderboard) *submissionDomain {
	if leaderboard == nil {
		leaderboard = &testutil.MockLeaderboard{}
	}

	return NewSubmissionDomain(
		repository.NewSubmissionRepository(),
		repository.NewMissionRepository(),
		repository.NewUserRepository(),
		repository.NewParticipantRepository(),
		leaderboard,
	)
}

func Test_submissionDomain_Submit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain(nil)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	resp, err := d.Submit(userCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "link",
		Content:   map[string]any{"link": "https://example.com/proof"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "pending", resp.Status)

	// The submitter became a participant and the counter moved.
	participant, err := repository.NewParticipantRepository().
		Get(ctx, testutil.User2.ID, testutil.Mission1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), participant.Points)

	mission, err := repository.NewMissionRepository().GetByID(ctx, testutil.Mission1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), mission.Participants)

	// One submission per user per mission.
	_, err = d.Submit(userCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "text",
		Content:   map[string]any{"text": "second try"},
	})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "You already submitted to this mission"), err)
}

func Test_submissionDomain_Submit_missionNotActive(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain(nil)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	_, err := d.Submit(userCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission2.ID,
		Type:      "link",
		Content:   map[string]any{"link": "https://example.com/proof"},
	})
	require.Equal(t, errorx.New(errorx.Unavailable, "Mission is not accepting submissions"), err)

	_, err = d.Submit(userCtx, &model.SubmitMissionRequest{
		MissionID: "no-such-mission",
		Type:      "link",
		Content:   map[string]any{"link": "https://example.com/proof"},
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found mission"), err)
}

func Test_submissionDomain_Submit_invalidContent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain(nil)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	_, err := d.Submit(userCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "bad-type",
		Content:   map[string]any{},
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid submission type bad-type"), err)

	_, err = d.Submit(userCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "link",
		Content:   map[string]any{"link": "not a url"},
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Link must be an absolute URL"), err)

	// Rejected content leaves no participant row behind.
	_, err = repository.NewParticipantRepository().
		Get(ctx, testutil.User2.ID, testutil.Mission1.ID)
	require.Error(t, err)
}

func Test_submissionDomain_GetList_scoping(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain(nil)

	for _, userID := range []string{testutil.User2.ID, testutil.AdminUser.ID} {
		submitterCtx := testutil.MockContextWithUserID(ctx, userID)
		_, err := d.Submit(submitterCtx, &model.SubmitMissionRequest{
			MissionID: testutil.Mission1.ID,
			Type:      "text",
			Content:   map[string]any{"text": "done"},
		})
		require.NoError(t, err)
	}

	// The creator sees everything.
	creatorCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.GetList(creatorCtx, &model.GetListSubmissionRequest{
		MissionID: testutil.Mission1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Submissions, 2)

	// A participant only sees their own rows.
	participantCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	resp, err = d.GetList(participantCtx, &model.GetListSubmissionRequest{
		MissionID: testutil.Mission1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Submissions, 1)
	require.Equal(t, testutil.User2.ID, resp.Submissions[0].UserID)
}

func Test_submissionDomain_Review(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	var leaderboardDelta int64
	d := newTestSubmissionDomain(&testutil.MockLeaderboard{
		ChangePointLeaderboardFunc: func(_ context.Context, value int64, _, _ string) error {
			leaderboardDelta += value
			return nil
		},
	})

	submitterCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	submitResp, err := d.Submit(submitterCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "text",
		Content:   map[string]any{"text": "done"},
	})
	require.NoError(t, err)

	// Only the creator or an admin reviews.
	_, err = d.Review(submitterCtx, &model.ReviewSubmissionRequest{
		ID: submitResp.ID, Action: "approved", Points: 50,
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	creatorCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	reviewResp, err := d.Review(creatorCtx, &model.ReviewSubmissionRequest{
		ID: submitResp.ID, Action: "under_review",
	})
	require.NoError(t, err)
	require.Equal(t, "under_review", reviewResp.Status)

	reviewResp, err = d.Review(creatorCtx, &model.ReviewSubmissionRequest{
		ID: submitResp.ID, Action: "approved", Points: 50, Comment: "good work",
	})
	require.NoError(t, err)
	require.Equal(t, "approved", reviewResp.Status)

	// The approval awarded points everywhere.
	participant, err := repository.NewParticipantRepository().
		Get(ctx, testutil.User2.ID, testutil.Mission1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), participant.Points)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), user.Points)
	require.Equal(t, int64(50), leaderboardDelta)

	submission, err := repository.NewSubmissionRepository().GetByID(ctx, submitResp.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), submission.Points)
	require.Equal(t, testutil.User1.ID, submission.ReviewerID)
	require.Equal(t, "good work", submission.ReviewerComment)
	require.False(t, submission.ReviewedAt.IsZero())

	// A settled review never reopens.
	_, err = d.Review(creatorCtx, &model.ReviewSubmissionRequest{
		ID: submitResp.ID, Action: "rejected",
	})
	require.Equal(t, errorx.New(errorx.Conflict,
		"Cannot change submission status from approved to rejected"), err)
}

func Test_submissionDomain_Review_reject(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain(nil)

	submitterCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	submitResp, err := d.Submit(submitterCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "link",
		Content:   map[string]any{"link": "https://example.com/proof"},
	})
	require.NoError(t, err)

	creatorCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	reviewResp, err := d.Review(creatorCtx, &model.ReviewSubmissionRequest{
		ID: submitResp.ID, Action: "rejected", Points: 50, Comment: "not it",
	})
	require.NoError(t, err)
	require.Equal(t, "rejected", reviewResp.Status)

	// A rejection never grants points, whatever the request carried.
	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), user.Points)

	submission, err := repository.NewSubmissionRepository().GetByID(ctx, submitResp.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), submission.Points)
}

func Test_submissionDomain_Get_access(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain(nil)

	submitterCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	submitResp, err := d.Submit(submitterCtx, &model.SubmitMissionRequest{
		MissionID: testutil.Mission1.ID,
		Type:      "social_proof",
		Content:   map[string]any{"platform": "twitter", "handle": "@user2"},
	})
	require.NoError(t, err)

	// Owner, creator and admin can read it.
	for _, userID := range []string{testutil.User2.ID, testutil.User1.ID, testutil.AdminUser.ID} {
		readerCtx := testutil.MockContextWithUserID(ctx, userID)
		resp, err := d.Get(readerCtx, &model.GetSubmissionRequest{ID: submitResp.ID})
		require.NoError(t, err)
		require.Equal(t, testutil.User2.ID, resp.UserID)
		require.Equal(t, "@user2", resp.Content["handle"])
	}

	// Another participant cannot.
	strangerCtx := testutil.MockContextWithUserID(ctx, testutil.PrivilegedUser.ID)
	_, err = d.Get(strangerCtx, &model.GetSubmissionRequest{ID: submitResp.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)
}

func Test_canTransitSubmission(t *testing.T) {
	require.True(t, canTransitSubmission(entity.SubmissionPending, entity.SubmissionUnderReview))
	require.True(t, canTransitSubmission(entity.SubmissionPending, entity.SubmissionApproved))
	require.True(t, canTransitSubmission(entity.SubmissionPending, entity.SubmissionRejected))
	require.True(t, canTransitSubmission(entity.SubmissionUnderReview, entity.SubmissionApproved))
	require.True(t, canTransitSubmission(entity.SubmissionUnderReview, entity.SubmissionRejected))

	require.False(t, canTransitSubmission(entity.SubmissionUnderReview, entity.SubmissionPending))
	require.False(t, canTransitSubmission(entity.SubmissionApproved, entity.SubmissionRejected))
	require.False(t, canTransitSubmission(entity.SubmissionRejected, entity.SubmissionApproved))
}
