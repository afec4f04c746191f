package feedback

import (
	"bytes"
	"testing"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelError, "error"},
		{LevelWarning, "warning"},
		{LevelInfo, "info"},
		{LevelSuccess, "success"},
		{Level(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestConsole(t *testing.T) {
	var out, errOut bytes.Buffer
	colors.SetOutput(&out, &errOut)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })

	var h Handler = Console{}
	h.Success("imported 3 items")
	h.Error("database locked")

	assert.Contains(t, out.String(), "imported 3 items")
	assert.Contains(t, errOut.String(), "database locked")
}

func TestStatusLineLatest(t *testing.T) {
	var seen []Message
	s := NewStatusLine(func(m Message) { seen = append(seen, m) })
	fixed := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, ok := s.Latest()
	assert.False(t, ok)

	s.Info("sort: name")
	s.Warning("page out of range")

	msg, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "page out of range", msg.Text)
	assert.Equal(t, LevelWarning, msg.Level)
	assert.Equal(t, fixed, msg.Timestamp)
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, s.Seq())
}

func TestStatusLineClearIf(t *testing.T) {
	s := NewStatusLine(nil)
	s.Error("first")
	stale := s.Seq()
	s.Success("second")

	assert.False(t, s.ClearIf(stale))
	msg, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", msg.Text)

	assert.True(t, s.ClearIf(s.Seq()))
	_, ok = s.Latest()
	assert.False(t, ok)
}
