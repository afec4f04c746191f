// Package version holds build information, set at link time with
// -ldflags "-X github.com/cristianoliveira/jobdeck/internal/version.Version=...".
package version

// Version is the release version.
var Version = "development"

// Commit is the git commit hash.
var Commit = "unknown"

// Date is the build date.
var Date = "unknown"

// Info is the build information as reported by the CLI and the HTTP API.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the version including the commit hash if available.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}
