package missionreward

import (
	"context"
	"testing"

	"github.com/missionforge/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_linearCalculator(t *testing.T) {
	calculator, err := New(context.Background(), entity.DistributionLinear, 3, nil, true)
	require.NoError(t, err)

	// 1000 over 3 winners gives 333 each, the remaining point is never
	// redistributed.
	var total uint64
	for rank := 1; rank <= 3; rank++ {
		amount := calculator.Amount(1000, rank)
		require.Equal(t, uint64(333), amount)
		total += amount
	}

	require.Equal(t, uint64(999), total)
	require.Equal(t, uint64(1000%3), 1000-total)

	require.Equal(t, uint64(0), calculator.Amount(1000, 0))
	require.Equal(t, uint64(0), calculator.Amount(1000, 4))
}

func Test_linearCalculator_poolSmallerThanWinners(t *testing.T) {
	calculator, err := New(context.Background(), entity.DistributionLinear, 7, nil, true)
	require.NoError(t, err)

	require.Equal(t, uint64(0), calculator.Amount(5, 1))
}

func Test_winnerTakesAllCalculator(t *testing.T) {
	calculator, err := New(context.Background(), entity.DistributionWinnerTakesAll, 3, nil, true)
	require.NoError(t, err)

	require.Equal(t, uint64(1000), calculator.Amount(1000, 1))
	require.Equal(t, uint64(0), calculator.Amount(1000, 2))
	require.Equal(t, uint64(0), calculator.Amount(1000, 3))
}

func Test_topPerformersCalculator(t *testing.T) {
	calculator, err := New(context.Background(), entity.DistributionTopPerformers, 4, nil, true)
	require.NoError(t, err)

	for rank := 1; rank <= 4; rank++ {
		require.Equal(t, uint64(250), calculator.Amount(1000, rank))
	}

	require.Equal(t, uint64(0), calculator.Amount(1000, 5))
}

func Test_tieredCalculator(t *testing.T) {
	tiers := []entity.Tier{
		{Percentage: 50, MinRank: 1, MaxRank: 1},
		{Percentage: 30, MinRank: 2, MaxRank: 2},
		{Percentage: 20, MinRank: 3, MaxRank: 3},
	}

	calculator, err := New(context.Background(), entity.DistributionTiered, 3, tiers, true)
	require.NoError(t, err)

	require.Equal(t, uint64(500), calculator.Amount(1000, 1))
	require.Equal(t, uint64(300), calculator.Amount(1000, 2))
	require.Equal(t, uint64(200), calculator.Amount(1000, 3))
	require.Equal(t, uint64(0), calculator.Amount(1000, 4))
}

func Test_tieredCalculator_splitsWithinTier(t *testing.T) {
	tiers := []entity.Tier{
		{Percentage: 60, MinRank: 1, MaxRank: 1},
		{Percentage: 40, MinRank: 2, MaxRank: 4},
	}

	calculator, err := New(context.Background(), entity.DistributionTiered, 4, tiers, true)
	require.NoError(t, err)

	require.Equal(t, uint64(600), calculator.Amount(1000, 1))

	// 40% of 1000 is 400, split by floor division over three ranks.
	for rank := 2; rank <= 4; rank++ {
		require.Equal(t, uint64(133), calculator.Amount(1000, rank))
	}
}

func Test_tieredCalculator_validation(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, entity.DistributionTiered, 1, nil, true)
	require.Error(t, err)

	_, err = New(ctx, entity.DistributionTiered, 1, []entity.Tier{
		{Percentage: 50, MinRank: 1, MaxRank: 1},
		{Percentage: 30, MinRank: 2, MaxRank: 2},
	}, true)
	require.Error(t, err)

	_, err = New(ctx, entity.DistributionTiered, 1, []entity.Tier{
		{Percentage: 100, MinRank: 2, MaxRank: 1},
	}, true)
	require.Error(t, err)

	_, err = New(ctx, entity.DistributionTiered, 1, []entity.Tier{
		{Percentage: 100, MinRank: 0, MaxRank: 1},
	}, true)
	require.Error(t, err)

	// Without needParse the same broken config builds, for read paths over
	// data that was validated when written.
	_, err = New(ctx, entity.DistributionTiered, 1, nil, false)
	require.NoError(t, err)
}

func Test_maxWinnersValidation(t *testing.T) {
	ctx := context.Background()

	for _, distribution := range []entity.DistributionType{
		entity.DistributionLinear,
		entity.DistributionWinnerTakesAll,
		entity.DistributionTopPerformers,
	} {
		_, err := New(ctx, distribution, 0, nil, true)
		require.Error(t, err)

		_, err = New(ctx, distribution, 1, nil, true)
		require.NoError(t, err)
	}

	_, err := New(ctx, entity.DistributionType("unknown"), 1, nil, true)
	require.Error(t, err)
}
