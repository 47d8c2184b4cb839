package domain

import (
	"time"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/pkg/enum"
)

const defaultTimeLayout string = time.RFC3339Nano

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:       user.ID,
		Address:  user.Address,
		Name:     user.Name,
		Role:     enum.ToString(user.Role),
		Points:   user.Points,
		Settings: user.Settings,
	}
}

func convertTiers(entityTiers []entity.Tier) []model.Tier {
	modelTiers := []model.Tier{}
	for _, t := range entityTiers {
		modelTiers = append(modelTiers, model.Tier(t))
	}
	return modelTiers
}

func convertTaskLinks(entityLinks []entity.TaskLink) []model.TaskLink {
	modelLinks := []model.TaskLink{}
	for _, l := range entityLinks {
		modelLinks = append(modelLinks, model.TaskLink(l))
	}
	return modelLinks
}

func convertSocialLinks(entityLinks []entity.SocialLink) []model.SocialLink {
	modelLinks := []model.SocialLink{}
	for _, l := range entityLinks {
		modelLinks = append(modelLinks, model.SocialLink(l))
	}
	return modelLinks
}

// convertMission renders an entity with the status the caller computed for
// it, which may be ahead of what is stored.
func convertMission(
	mission *entity.Mission,
	status entity.MissionStatusType,
	creator *entity.User,
	token *entity.AllowedToken,
) model.Mission {
	if mission == nil {
		return model.Mission{}
	}

	result := model.Mission{
		ID:          mission.ID,
		CreatedBy:   mission.CreatedBy,
		Creator:     convertUser(creator),
		Title:       mission.Title,
		Summary:     mission.Summary,
		Description: string(mission.Description),
		Category:    mission.Category,
		Tags:        mission.Tags,

		TokenAmount: mission.TokenAmount,
		TotalPoints: mission.TotalPoints,

		StartTime: mission.StartTime.Format(defaultTimeLayout),
		EndTime:   mission.EndTime.Format(defaultTimeLayout),
		Status:    enum.ToString(status),

		Participants:      mission.Participants,
		PointsDistributed: mission.PointsDistributed,
		TokensDistributed: mission.TokensDistributed,

		TaskLinks:   convertTaskLinks(mission.TaskLinks),
		SocialLinks: convertSocialLinks(mission.SocialLinks),

		Reward: model.RewardConfig{
			Distribution: enum.ToString(mission.Distribution),
			MaxWinners:   mission.MaxWinners,
			Tiers:        convertTiers(mission.Tiers),
		},
		Finalized: mission.Finalized,
	}

	if mission.TokenID.Valid {
		result.TokenID = mission.TokenID.String
	}

	if token != nil {
		result.TokenSymbol = token.Symbol
	}

	return result
}

func convertShortMission(mission *entity.Mission, status entity.MissionStatusType) model.ShortMission {
	if mission == nil {
		return model.ShortMission{}
	}

	return model.ShortMission{
		ID:          mission.ID,
		Title:       mission.Title,
		Category:    mission.Category,
		Status:      enum.ToString(status),
		TotalPoints: mission.TotalPoints,
	}
}

func convertSubmission(submission *entity.Submission, user *entity.User) model.Submission {
	if submission == nil {
		return model.Submission{}
	}

	result := model.Submission{
		ID:        submission.ID,
		MissionID: submission.MissionID,
		UserID:    submission.UserID,
		User:      convertUser(user),
		Type:      enum.ToString(submission.Type),
		Content:   submission.Content,
		Status:    enum.ToString(submission.Status),
		Points:    submission.Points,

		ReviewerID:      submission.ReviewerID,
		ReviewerComment: submission.ReviewerComment,

		CreatedAt: submission.CreatedAt.Format(defaultTimeLayout),
	}

	if !submission.ReviewedAt.IsZero() {
		result.ReviewedAt = submission.ReviewedAt.Format(defaultTimeLayout)
	}

	return result
}

func convertAllowedToken(token *entity.AllowedToken) model.AllowedToken {
	if token == nil {
		return model.AllowedToken{}
	}

	return model.AllowedToken{
		ID:       token.ID,
		Address:  token.Address,
		Symbol:   token.Symbol,
		Name:     token.Name,
		Decimals: token.Decimals,
		Chain:    token.Chain,
		Active:   token.Active,
	}
}
