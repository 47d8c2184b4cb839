package main

import (
	"github.com/missionforge/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	return migration.Migrate(s.baseContext())
}
