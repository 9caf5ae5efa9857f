package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/migrations"
)

// DB is the journal connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending journal migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("journal migrations applied")
	}
	return nil
}
