// Package version carries build metadata, overridable at link time:
//
//	go build -ldflags "-X github.com/cicchiello/pi-nas/internal/version.Version=v1.2.0"
package version

var (
	Version = "0.3.0"
	Commit  = "unknown"
)

// String returns the version with the commit when one was stamped in.
func String() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
