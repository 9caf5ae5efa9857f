package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLast(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every entry carries the role.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", WithOutput(&buf))

	l.Info().Msg("hello")

	entry := decodeLast(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", WithOutput(&buf))
	l.Info().Msg("x")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, decodeLast(t, &buf), "func")
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", WithOutput(&buf), WithLevel("WARN"))

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeLast(t, &buf)["message"])
}

func TestWithLevel_UnknownFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", WithOutput(&buf), WithLevel("chatty"))

	l.Debug().Msg("dropped")
	assert.Empty(t, buf.String())
	l.Info().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", WithFile(path))

	l.Info().Str("operation", "login").Msg("done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"operation":"login"`)
	assert.Contains(t, string(data), `"role":"client"`)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("p", WithOutput(&parentBuf))
	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf).With().Str("extra", "1").Logger()

	parent.Info().Msg("parent")
	child.Info().Msg("child")

	assert.NotContains(t, parentBuf.String(), "extra")
	assert.Contains(t, childBuf.String(), `"extra":"1"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", WithOutput(&buf))
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "ctx", decodeLast(t, &buf)["role"])
}
