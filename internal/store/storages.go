package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/config"
	"github.com/MKhiriev/task-manager-client/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	Journal JournalRepository

	db *DB
}

// NewClientStorages opens and migrates the SQLite journal named by
// cfg.JournalDSN. An empty DSN yields a journal that records nothing.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.JournalDSN == "" {
		logger.Debug().Msg("scenario journal disabled")
		return &ClientStorages{Journal: nopJournal{}}, nil
	}

	logger.Info().Str("dsn", cfg.JournalDSN).Msg("opening scenario journal...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Journal: NewJournalRepository(db, logger),
		db:      db,
	}, nil
}

// Close releases the database, if one was opened.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
