package missionreward

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/errorx"
)

// tieredCalculator allocates a percentage of the pool to each inclusive rank
// range. Within a tier the share is split by floor division across the ranks
// in range, so like the linear policy the remainder stays unawarded.
type tieredCalculator struct {
	tiers []entity.Tier
}

func newTieredCalculator(ctx context.Context, tiers []entity.Tier, needParse bool) (*tieredCalculator, error) {
	calculator := &tieredCalculator{tiers: tiers}
	if needParse {
		if len(tiers) == 0 {
			return nil, errorx.New(errorx.BadRequest, "Tiered distribution requires at least one tier")
		}

		total := 0
		for _, tier := range tiers {
			if tier.MinRank < 1 {
				return nil, errorx.New(errorx.BadRequest, "Tier min rank must be at least 1")
			}

			if tier.MinRank > tier.MaxRank {
				return nil, errorx.New(errorx.BadRequest, "Tier min rank cannot exceed max rank")
			}

			total += tier.Percentage
		}

		if total != 100 {
			return nil, errorx.New(errorx.BadRequest, "Tier percentages must sum to exactly 100, got %d", total)
		}
	}

	return calculator, nil
}

func (c *tieredCalculator) Amount(pool uint64, rank int) uint64 {
	for _, tier := range c.tiers {
		if rank < tier.MinRank || rank > tier.MaxRank {
			continue
		}

		share := pool * uint64(tier.Percentage) / 100
		width := uint64(tier.MaxRank - tier.MinRank + 1)
		return share / width
	}

	return 0
}

// MaxRank returns the highest rank any tier covers. Finalization uses it to
// know how deep into the ranking rewards can reach.
func (c *tieredCalculator) MaxRank() int {
	max := 0
	for _, tier := range c.tiers {
		if tier.MaxRank > max {
			max = tier.MaxRank
		}
	}

	return max
}
