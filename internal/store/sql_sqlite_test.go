package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/task-manager-client/internal/config"
	"github.com/MKhiriev/task-manager-client/internal/logger"
)

func TestJournalPath(t *testing.T) {
	tests := []struct {
		dsn    string
		want   string
		isFile bool
	}{
		{dsn: "journal.db", want: "journal.db", isFile: true},
		{dsn: "data/journal.db", want: "data/journal.db", isFile: true},
		{dsn: "file:data/journal.db?_busy_timeout=5000", want: "data/journal.db", isFile: true},
		{dsn: ":memory:"},
		{dsn: "file::memory:?cache=shared"},
		{dsn: "file:journal?mode=memory&cache=shared"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, ok := journalPath(tt.dsn)
			assert.Equal(t, tt.isFile, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewConnectSQLite_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	dsn := "file:" + filepath.Join(dir, "journal.db") + "?_busy_timeout=1000"

	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{JournalDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.DirExists(t, dir)
}

func TestNewConnectSQLite_Memory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{JournalDSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate(context.Background()))
}
