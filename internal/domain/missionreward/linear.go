package missionreward

import (
	"context"

	"github.com/missionforge/backend/pkg/errorx"
)

// linearCalculator splits the pool equally among the top maxWinners ranks.
// Each share is floor(pool / maxWinners); the division remainder is never
// redistributed.
type linearCalculator struct {
	maxWinners int
}

func newLinearCalculator(ctx context.Context, maxWinners int, needParse bool) (*linearCalculator, error) {
	calculator := &linearCalculator{maxWinners: maxWinners}
	if needParse {
		if maxWinners < 1 {
			return nil, errorx.New(errorx.BadRequest, "Max winners must be at least 1")
		}
	}

	return calculator, nil
}

func (c *linearCalculator) Amount(pool uint64, rank int) uint64 {
	if rank < 1 || rank > c.maxWinners {
		return 0
	}

	return pool / uint64(c.maxWinners)
}
