package entity

import (
	"context"

	"github.com/missionforge/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&AllowedToken{},
		&Mission{},
		&Submission{},
		&Participant{},
		&Like{},
		&PayReward{},
		&Migration{},
	)
}

// Migration tracks the last applied versioned migrator.
type Migration struct {
	Version int `gorm:"primaryKey"`
}
