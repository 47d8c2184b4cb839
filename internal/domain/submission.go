package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/missionforge/backend/internal/common"
	"github.com/missionforge/backend/internal/domain/missionclaim"
	"github.com/missionforge/backend/internal/domain/missionstate"
	"github.com/missionforge/backend/internal/domain/statistic"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/enum"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SubmissionDomain interface {
	Submit(ctx context.Context, req *model.SubmitMissionRequest) (*model.SubmitMissionResponse, error)
	Get(ctx context.Context, req *model.GetSubmissionRequest) (*model.GetSubmissionResponse, error)
	GetList(ctx context.Context, req *model.GetListSubmissionRequest) (*model.GetListSubmissionResponse, error)
	Review(ctx context.Context, req *model.ReviewSubmissionRequest) (*model.ReviewSubmissionResponse, error)
}

type submissionDomain struct {
	submissionRepo  repository.SubmissionRepository
	missionRepo     repository.MissionRepository
	userRepo        repository.UserRepository
	participantRepo repository.ParticipantRepository
	roleVerifier    *common.MissionRoleVerifier
	leaderboard     statistic.Leaderboard
}

func NewSubmissionDomain(
	submissionRepo repository.SubmissionRepository,
	missionRepo repository.MissionRepository,
	userRepo repository.UserRepository,
	participantRepo repository.ParticipantRepository,
	leaderboard statistic.Leaderboard,
) *submissionDomain {
	return &submissionDomain{
		submissionRepo:  submissionRepo,
		missionRepo:     missionRepo,
		userRepo:        userRepo,
		participantRepo: participantRepo,
		roleVerifier:    common.NewMissionRoleVerifier(userRepo),
		leaderboard:     leaderboard,
	}
}

func (d *submissionDomain) Submit(
	ctx context.Context, req *model.SubmitMissionRequest,
) (*model.SubmitMissionResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	mission, err := d.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	status, dirty := missionstate.Reconcile(mission, time.Now())
	if dirty {
		if err := d.missionRepo.UpdateStatusByID(ctx, mission.ID, status); err != nil {
			xcontext.Logger(ctx).Warnf(
				"Cannot persist reconciled status of mission %s: %v", mission.ID, err)
		}
	}

	if status != entity.MissionActive {
		return nil, errorx.New(errorx.Unavailable, "Mission is not accepting submissions")
	}

	submissionType, err := enum.ToEnum[entity.SubmissionType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid submission type %s", req.Type)
	}

	processor, err := missionclaim.NewProcessor(ctx, submissionType, req.Content)
	if err != nil {
		return nil, err
	}

	// A fast path for the common duplicate. The unique index below is the
	// real arbiter under concurrent requests.
	_, err = d.submissionRepo.Get(ctx, mission.ID, userID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You already submitted to this mission")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check for existing submission: %v", err)
		return nil, errorx.Unknown
	}

	submission := &entity.Submission{
		Base:      entity.Base{ID: uuid.NewString()},
		MissionID: mission.ID,
		UserID:    userID,
		Type:      submissionType,
		Content:   processor.Content(),
		Status:    entity.SubmissionPending,
	}

	if err := d.submissionRepo.Create(ctx, submission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "You already submitted to this mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot create submission: %v", err)
		return nil, errorx.Unknown
	}

	// Side effects after the insert are best-effort. A failure here never
	// takes the accepted submission down with it.
	d.trackParticipant(ctx, userID, mission.ID)

	return &model.SubmitMissionResponse{
		ID:     submission.ID,
		Status: enum.ToString(submission.Status),
	}, nil
}

func (d *submissionDomain) Get(
	ctx context.Context, req *model.GetSubmissionRequest,
) (*model.GetSubmissionResponse, error) {
	submission, err := d.submissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found submission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get submission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.verifySubmissionAccess(ctx, submission); err != nil {
		return nil, err
	}

	user, err := d.userRepo.GetByID(ctx, submission.UserID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get submitter: %v", err)
	}

	return &model.GetSubmissionResponse{Submission: convertSubmission(submission, user)}, nil
}

func (d *submissionDomain) GetList(
	ctx context.Context, req *model.GetListSubmissionRequest,
) (*model.GetListSubmissionResponse, error) {
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

	mission, err := d.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	filter := repository.GetListSubmissionFilter{
		MissionID: mission.ID,
		Offset:    req.Offset,
		Limit:     req.Limit,
	}

	// The creator and admins review everything; everyone else only sees
	// their own submissions.
	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		filter.UserID = xcontext.RequestUserID(ctx)
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.SubmissionStatusType](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid submission status %s", req.Status)
		}

		filter.Status = []entity.SubmissionStatusType{status}
	}

	submissions, err := d.submissionRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get submission list: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for i := range submissions {
		userIDs = append(userIDs, submissions[i].UserID)
	}

	userMap := map[string]*entity.User{}
	if len(userIDs) > 0 {
		users, err := d.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get submitters: %v", err)
		}

		for i := range users {
			userMap[users[i].ID] = &users[i]
		}
	}

	result := []model.Submission{}
	for i := range submissions {
		result = append(result, convertSubmission(&submissions[i], userMap[submissions[i].UserID]))
	}

	return &model.GetListSubmissionResponse{Submissions: result}, nil
}

func (d *submissionDomain) Review(
	ctx context.Context, req *model.ReviewSubmissionRequest,
) (*model.ReviewSubmissionResponse, error) {
	submission, err := d.submissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found submission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get submission: %v", err)
		return nil, errorx.Unknown
	}

	mission, err := d.missionRepo.GetByID(ctx, submission.MissionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mission of submission: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when reviewing submission: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	target, err := enum.ToEnum[entity.SubmissionStatusType](req.Action)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid review action %s", req.Action)
	}

	if !canTransitSubmission(submission.Status, target) {
		return nil, errorx.New(errorx.Conflict,
			"Cannot change submission status from %s to %s", submission.Status, target)
	}

	update := &entity.Submission{
		Status:          target,
		ReviewerID:      xcontext.RequestUserID(ctx),
		ReviewedAt:      time.Now(),
		ReviewerComment: req.Comment,
	}

	if target == entity.SubmissionApproved {
		update.Points = req.Points
	}

	if err := d.submissionRepo.UpdateReviewByID(ctx, submission.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update submission review: %v", err)
		return nil, errorx.Unknown
	}

	if target == entity.SubmissionApproved && req.Points > 0 {
		d.awardPoints(ctx, submission.UserID, submission.MissionID, req.Points)
	}

	return &model.ReviewSubmissionResponse{Status: enum.ToString(target)}, nil
}

func (d *submissionDomain) verifySubmissionAccess(
	ctx context.Context, submission *entity.Submission,
) error {
	if submission.UserID == xcontext.RequestUserID(ctx) {
		return nil
	}

	mission, err := d.missionRepo.GetByID(ctx, submission.MissionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mission of submission: %v", err)
		return errorx.Unknown
	}

	if err := d.roleVerifier.Verify(ctx, mission); err != nil {
		return errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return nil
}

// trackParticipant registers the submitter as a mission participant and bumps
// the participant counter. Both are best-effort, a duplicate registration on
// resubmit attempts is silently ignored.
func (d *submissionDomain) trackParticipant(ctx context.Context, userID, missionID string) {
	err := d.participantRepo.Create(ctx, &entity.Participant{
		UserID:    userID,
		MissionID: missionID,
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			xcontext.Logger(ctx).Warnf("Cannot track participant %s: %v", userID, err)
		}

		return
	}

	if err := d.missionRepo.IncreaseParticipants(ctx, missionID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot increase participant counter: %v", err)
	}
}

// awardPoints applies an approval's points to the participant row, the user's
// lifetime total, and the cached leaderboard. Failures are logged and
// swallowed; the review itself already succeeded.
func (d *submissionDomain) awardPoints(ctx context.Context, userID, missionID string, points uint64) {
	if err := d.participantRepo.IncreasePoints(ctx, userID, missionID, points); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot increase participant points: %v", err)
	}

	if err := d.userRepo.IncreasePoints(ctx, userID, points); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot increase user points: %v", err)
	}

	if err := d.leaderboard.ChangePointLeaderboard(ctx, int64(points), userID, missionID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}
}

func canTransitSubmission(from, to entity.SubmissionStatusType) bool {
	switch from {
	case entity.SubmissionPending:
		return to == entity.SubmissionUnderReview ||
			to == entity.SubmissionApproved ||
			to == entity.SubmissionRejected
	case entity.SubmissionUnderReview:
		return to == entity.SubmissionApproved || to == entity.SubmissionRejected
	default:
		return false
	}
}
