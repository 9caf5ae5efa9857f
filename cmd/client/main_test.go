package main

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/task-manager-client/internal/fakeserver"
	"github.com/MKhiriev/task-manager-client/internal/store"
	"github.com/MKhiriev/task-manager-client/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	args = append(args,
		"--log-file", filepath.Join(dir, "client.log"),
		"--env-file", filepath.Join(dir, "missing.env"),
	)

	cmd := newRootCmd(models.NewAppBuildInfo("v0.1.0", "2026-10-01", "deadbeef"))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func startFake(t *testing.T) (*fakeserver.Server, string) {
	t.Helper()
	fake := fakeserver.New()
	srv := fake.Start()
	t.Cleanup(srv.Close)
	return fake, srv.URL
}

func closedServerURL(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return "http://" + addr
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "Build version: v0.1.0\nBuild date: 2026-10-01\nBuild commit: deadbeef\n", out)
}

func TestHealth(t *testing.T) {
	fake, url := startFake(t)

	out, err := execute(t, "health", "-a", url)
	require.NoError(t, err)
	assert.Equal(t, "✅ Application health: UP\n", out)

	fake.SetHealthStatus("DOWN")
	out, err = execute(t, "health", "-a", url)
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "✅ Application health: DOWN\n", out)
}

func TestQuick(t *testing.T) {
	fake, url := startFake(t)

	out, err := execute(t, "quick", "-a", url)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ ALL TESTS PASSED!")

	fake.Fail(fakeserver.OpCreateTask, fakeserver.Failure{Status: 500})
	out, err = execute(t, "quick", "-a", url)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "❌ Task creation failed.")
}

func TestMenu_ServerUnreachable(t *testing.T) {
	url := closedServerURL(t)

	out, err := execute(t, "menu", "-a", url)

	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "🔍 Checking if Task Manager server is running...")
	assert.Contains(t, out, "❌ Task Manager server is not running or not accessible at "+url)
}

func TestScenario_ServerUnreachable(t *testing.T) {
	out, err := execute(t, "scenario", "-a", closedServerURL(t))

	require.ErrorIs(t, err, errReported)
	assert.NotContains(t, out, "RUNNING COMPLETE TEST SCENARIO")
}

func TestScenario_JournalAndHistory(t *testing.T) {
	fake, url := startFake(t)
	journal := filepath.Join(t.TempDir(), "journal.db")

	// a failed step is reported but does not fail the command
	fake.Fail(fakeserver.OpUsers, fakeserver.Failure{Status: 500})
	out, err := execute(t, "scenario", "-a", url, "--journal", journal)
	require.NoError(t, err)
	assert.Contains(t, out, "🧪 RUNNING COMPLETE TEST SCENARIO")
	assert.Contains(t, out, "Test scenario completed with 1 failed step(s)")

	out, err = execute(t, "history", "-a", url, "--journal", journal, "--steps")
	require.NoError(t, err)
	assert.Contains(t, out, "full")
	assert.Contains(t, out, "testuser_")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Run 1 (full)")
}

func TestHistory_Empty(t *testing.T) {
	_, url := startFake(t)
	journal := filepath.Join(t.TempDir(), "journal.db")

	out, err := execute(t, "history", "-a", url, "--journal", journal)

	require.NoError(t, err)
	assert.Equal(t, "No scenario runs recorded\n", out)
}

func TestHistory_JournalDisabled(t *testing.T) {
	_, url := startFake(t)

	_, err := execute(t, "history", "-a", url)

	require.ErrorIs(t, err, store.ErrJournalDisabled)
}
