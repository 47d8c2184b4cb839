package missionreward

import (
	"context"

	"github.com/missionforge/backend/pkg/errorx"
)

// winnerTakesAllCalculator gives the entire pool to rank 1. The max winners
// setting takes no part in the payout but is still validated so a mission
// cannot be stored with a nonsense value.
type winnerTakesAllCalculator struct{}

func newWinnerTakesAllCalculator(ctx context.Context, maxWinners int, needParse bool) (*winnerTakesAllCalculator, error) {
	if needParse {
		if maxWinners < 1 {
			return nil, errorx.New(errorx.BadRequest, "Max winners must be at least 1")
		}
	}

	return &winnerTakesAllCalculator{}, nil
}

func (c *winnerTakesAllCalculator) Amount(pool uint64, rank int) uint64 {
	if rank != 1 {
		return 0
	}

	return pool
}
