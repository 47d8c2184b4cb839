package main

import (
	"net/http"

	"github.com/missionforge/backend/internal/middleware"
	"github.com/missionforge/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadSearch()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	defer s.searchIndex.Close()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: middleware.AllowCors(s.configs, s.router.Handler()),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	cert, key := s.configs.ApiServer.Cert, s.configs.ApiServer.Key
	if cert != "" && key != "" {
		if err := s.server.ListenAndServeTLS(cert, key); err != nil {
			panic(err)
		}
	} else {
		if err := s.server.ListenAndServe(); err != nil {
			panic(err)
		}
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	{
		router.POST(authRouter, "/wallet/login", s.walletAuthDomain.Login)
		router.POST(authRouter, "/wallet/verify", s.walletAuthDomain.Verify)
	}

	// Public APIs. An access token is honored when provided so responses can
	// carry requester-specific fields, but it is never required.
	publicRouter := s.router.Branch()
	publicRouter.Before(middleware.NewAuthVerifier().WithOptional().Middleware())
	{
		router.GET(publicRouter, "/getMission", s.missionDomain.Get)
		router.GET(publicRouter, "/getListMission", s.missionDomain.GetList)
		router.GET(publicRouter, "/getUser", s.userDomain.GetUser)
		router.GET(publicRouter, "/getLikes", s.likeDomain.GetLikes)
		router.GET(publicRouter, "/getLeaderBoard", s.statisticDomain.GetLeaderBoard)
		router.GET(publicRouter, "/getListAllowedToken", s.allowedTokenDomain.GetList)
	}

	// These following APIs require an authenticated requester.
	authedRouter := s.router.Branch()
	authedRouter.Before(middleware.NewAuthVerifier().Middleware())
	{
		// User API
		router.GET(authedRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authedRouter, "/updateUser", s.userDomain.Update)

		// Mission API
		router.POST(authedRouter, "/createMission", s.missionDomain.Create)
		router.POST(authedRouter, "/updateMission", s.missionDomain.Update)
		router.POST(authedRouter, "/deleteMission", s.missionDomain.Delete)
		router.POST(authedRouter, "/cancelMission", s.missionDomain.Cancel)
		router.POST(authedRouter, "/pauseMission", s.missionDomain.Pause)
		router.POST(authedRouter, "/resumeMission", s.missionDomain.Resume)
		router.POST(authedRouter, "/finalizeMission", s.missionDomain.Finalize)

		// Submission API
		router.POST(authedRouter, "/submitMission", s.submissionDomain.Submit)
		router.GET(authedRouter, "/getSubmission", s.submissionDomain.Get)
		router.GET(authedRouter, "/getListSubmission", s.submissionDomain.GetList)
		router.POST(authedRouter, "/reviewSubmission", s.submissionDomain.Review)

		// Like API
		router.POST(authedRouter, "/toggleLike", s.likeDomain.Toggle)

		// Allowed token API
		router.POST(authedRouter, "/createAllowedToken", s.allowedTokenDomain.Create)
		router.POST(authedRouter, "/deleteAllowedToken", s.allowedTokenDomain.Delete)
	}
}
