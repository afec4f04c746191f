package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{"development without commit", "development", "unknown", "development"},
		{"release with commit", "1.0.0", "abc1234", "1.0.0+abc1234"},
		{"empty commit", "0.3.0", "", "0.3.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit, "unknown")
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestGet(t *testing.T) {
	withBuild(t, "1.2.0", "abc", "2026-10-01")
	assert.Equal(t, Info{Version: "1.2.0", Commit: "abc", Date: "2026-10-01"}, Get())
}
