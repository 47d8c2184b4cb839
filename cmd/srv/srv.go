package main

import (
	"context"
	"net/http"

	"github.com/missionforge/backend/config"
	"github.com/missionforge/backend/internal/domain"
	"github.com/missionforge/backend/internal/domain/search"
	"github.com/missionforge/backend/internal/domain/statistic"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/logger"
	"github.com/missionforge/backend/pkg/router"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/missionforge/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client
	searchIndex search.Index
	leaderboard statistic.Leaderboard

	userRepo         repository.UserRepository
	missionRepo      repository.MissionRepository
	submissionRepo   repository.SubmissionRepository
	participantRepo  repository.ParticipantRepository
	likeRepo         repository.LikeRepository
	allowedTokenRepo repository.AllowedTokenRepository
	payRewardRepo    repository.PayRewardRepository

	walletAuthDomain   domain.WalletAuthDomain
	userDomain         domain.UserDomain
	missionDomain      domain.MissionDomain
	submissionDomain   domain.SubmissionDomain
	likeDomain         domain.LikeDomain
	allowedTokenDomain domain.AllowedTokenDomain
	statisticDomain    domain.StatisticDomain

	router *router.Router
	server *http.Server
}

// baseContext carries the loaded dependencies for the load methods that need
// a context before any request exists.
func (s *srv) baseContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	if s.db != nil {
		ctx = xcontext.WithDB(ctx, s.db)
	}

	return ctx
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{
		// Map duplicate key violations to gorm.ErrDuplicatedKey so the
		// domains can tell a lost uniqueness race from a real failure.
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.baseContext())
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadSearch() {
	s.searchIndex = search.NewBleveIndex(s.baseContext())
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.missionRepo = repository.NewMissionRepository()
	s.submissionRepo = repository.NewSubmissionRepository()
	s.participantRepo = repository.NewParticipantRepository()
	s.likeRepo = repository.NewLikeRepository()
	s.allowedTokenRepo = repository.NewAllowedTokenRepository()
	s.payRewardRepo = repository.NewPayRewardRepository()
}

func (s *srv) loadDomains() {
	s.leaderboard = statistic.New(s.participantRepo, s.redisClient)

	s.walletAuthDomain = domain.NewWalletAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.missionRepo, s.participantRepo)
	s.missionDomain = domain.NewMissionDomain(
		s.missionRepo, s.userRepo, s.allowedTokenRepo, s.participantRepo,
		s.payRewardRepo, s.searchIndex, s.leaderboard)
	s.submissionDomain = domain.NewSubmissionDomain(
		s.submissionRepo, s.missionRepo, s.userRepo, s.participantRepo, s.leaderboard)
	s.likeDomain = domain.NewLikeDomain(s.likeRepo, s.missionRepo, s.submissionRepo)
	s.allowedTokenDomain = domain.NewAllowedTokenDomain(s.allowedTokenRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.missionRepo, s.userRepo, s.leaderboard)
}
