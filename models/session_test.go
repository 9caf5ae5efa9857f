package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_SetAndClear(t *testing.T) {
	var s Session
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.Identity)

	s.Set("tok", Identity{Username: "alice", Email: "a@test.com", Role: "USER"})
	assert.True(t, s.Authenticated())
	if assert.NotNil(t, s.Identity) {
		assert.Equal(t, "alice", s.Identity.Username)
	}

	s.Clear()
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.Identity)
	assert.Empty(t, s.Token)
}

func TestSession_Snapshot_IsDetached(t *testing.T) {
	s := &Session{}
	s.Set("tok", Identity{Username: "alice"})

	snap := s.Snapshot()
	snap.Identity.Username = "mallory"

	assert.Equal(t, "alice", s.Identity.Username)
}

func TestSession_AbbreviatedToken(t *testing.T) {
	long := strings.Repeat("a", 20) + strings.Repeat("x", 15) + strings.Repeat("z", 10)
	s := Session{Token: long}
	assert.Equal(t, strings.Repeat("a", 20)+"..."+strings.Repeat("z", 10), s.AbbreviatedToken())

	assert.Equal(t, "short", Session{Token: "short"}.AbbreviatedToken())
}

func TestMetricsIndex_Preview(t *testing.T) {
	m := MetricsIndex{Names: []string{"a", "b", "c"}}

	shown, more := m.Preview(2)
	assert.Equal(t, []string{"a", "b"}, shown)
	assert.Equal(t, 1, more)

	shown, more = m.Preview(10)
	assert.Len(t, shown, 3)
	assert.Zero(t, more)
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", " ")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
