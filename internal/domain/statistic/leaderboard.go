package statistic

import (
	"context"

	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/missionforge/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

// Leaderboard ranks participants of a mission by approved points. The redis
// sorted set is a cache over the participants table; whenever the key is
// missing it is rebuilt from the database before serving.
type Leaderboard interface {
	GetLeaderBoard(ctx context.Context, missionID string, offset, limit int) ([]model.UserStatistic, error)
	GetRank(ctx context.Context, userID, missionID string) (uint64, error)
	ChangePointLeaderboard(ctx context.Context, value int64, userID, missionID string) error
}

type leaderboard struct {
	participantRepo repository.ParticipantRepository
	redisClient     xredis.Client
}

func New(
	participantRepo repository.ParticipantRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{participantRepo: participantRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context, missionID string, offset, limit int,
) ([]model.UserStatistic, error) {
	key := redisKeyPointLeaderBoard(missionID)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, missionID); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	leaderboard := []model.UserStatistic{}
	for i, z := range results {
		leaderboard = append(leaderboard, model.UserStatistic{
			User:        model.User{ID: z.Member.(string)},
			Value:       int(z.Score),
			CurrentRank: offset + i + 1,
			MissionID:   missionID,
		})
	}

	return leaderboard, nil
}

func (l *leaderboard) GetRank(ctx context.Context, userID, missionID string) (uint64, error) {
	key := redisKeyPointLeaderBoard(missionID)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return 0, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, missionID); err != nil {
			return 0, err
		}
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, userID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangePointLeaderboard(
	ctx context.Context, value int64, userID, missionID string,
) error {
	key := redisKeyPointLeaderBoard(missionID)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// If the key didn't exist in redis, no need to update. The next read
	// rebuilds it from the database with this change already included.
	if !ok {
		return nil
	}

	if err := l.redisClient.ZIncrBy(ctx, key, value, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}

	return nil
}

func (l *leaderboard) loadLeaderboardFromDB(ctx context.Context, missionID string) error {
	participants, err := l.participantRepo.GetByMissionID(ctx, missionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load participants from database: %v", err)
		return errorx.Unknown
	}

	key := redisKeyPointLeaderBoard(missionID)
	for _, p := range participants {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{Member: p.UserID, Score: float64(p.Points)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
