package migration

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
)

// migrate0000 creates the database with the latest version of the schema.
func migrate0000(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
