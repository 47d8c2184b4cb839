package missionreward

import (
	"context"

	"github.com/missionforge/backend/pkg/errorx"
)

// topPerformersCalculator shares the pool equally among the top maxWinners
// ranks, the same arithmetic as linear. It exists as a distinct policy so a
// mission can express "percentile of participants" intent rather than a
// fixed head count.
type topPerformersCalculator struct {
	maxWinners int
}

func newTopPerformersCalculator(ctx context.Context, maxWinners int, needParse bool) (*topPerformersCalculator, error) {
	calculator := &topPerformersCalculator{maxWinners: maxWinners}
	if needParse {
		if maxWinners < 1 {
			return nil, errorx.New(errorx.BadRequest, "Max winners must be at least 1")
		}
	}

	return calculator, nil
}

func (c *topPerformersCalculator) Amount(pool uint64, rank int) uint64 {
	if rank < 1 || rank > c.maxWinners {
		return 0
	}

	return pool / uint64(c.maxWinners)
}
