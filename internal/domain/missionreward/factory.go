package missionreward

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/errorx"
)

// New builds the calculator for a mission reward configuration. With
// needParse the configuration is validated, so creation and finalization
// reject a broken setup before any reward is paid out.
func New(
	ctx context.Context,
	distribution entity.DistributionType,
	maxWinners int,
	tiers []entity.Tier,
	needParse bool,
) (Calculator, error) {
	switch distribution {
	case entity.DistributionLinear:
		return newLinearCalculator(ctx, maxWinners, needParse)

	case entity.DistributionWinnerTakesAll:
		return newWinnerTakesAllCalculator(ctx, maxWinners, needParse)

	case entity.DistributionTopPerformers:
		return newTopPerformersCalculator(ctx, maxWinners, needParse)

	case entity.DistributionTiered:
		return newTieredCalculator(ctx, tiers, needParse)

	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid distribution type %s", distribution)
	}
}
