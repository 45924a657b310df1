// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X github.com/iizs/godooray/internal/version.Version=1.2.3"
package version

// Version is the current version.
var Version = "0.1.0-dev"

// UserAgent returns the default User-Agent sent with every request.
func UserAgent() string {
	return "godooray/" + Version
}
