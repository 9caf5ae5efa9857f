package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/task-manager-client/internal/config"
	"github.com/MKhiriev/task-manager-client/internal/logger"
)

const memoryDSN = ":memory:"

// NewConnectSQLite opens the journal database. File DSNs, with or without
// a "file:" scheme and query parameters, get their directory created first.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if path, ok := journalPath(cfg.JournalDSN); ok {
		if err := ensureDir(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error preparing journal directory")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", cfg.JournalDSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening journal")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer; an in-memory database lives per connection
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting journal (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.JournalDSN).Msg("journal connected")

	return &DB{DB: conn, logger: log}, nil
}

// journalPath extracts the file path of dsn. ok is false for in-memory
// databases.
func journalPath(dsn string) (string, bool) {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == memoryDSN || strings.Contains(query, "mode=memory") {
		return "", false
	}
	return path, true
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking DB dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB dir: %w", err)
	}
	return nil
}
