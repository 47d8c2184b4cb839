package migration

import (
	"context"
	"errors"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Migrators run in order. Append a new function for every schema change, the
// applied version is tracked in the migrations table.
var migrators = []func(context.Context) error{
	migrate0000,
}

func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	current := -1
	var last entity.Migration
	err := xcontext.DB(ctx).Order("version DESC").Take(&last).Error
	if err == nil {
		current = last.Version
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	for version := current + 1; version < len(migrators); version++ {
		xcontext.Logger(ctx).Infof("Applying migration %04d", version)
		if err := migrators[version](ctx); err != nil {
			return err
		}

		if err := xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error; err != nil {
			return err
		}
	}

	return nil
}
