// Values below are overwritten at link time, e.g.
//
//	go build -ldflags "-X github.com/mergington/activities/internal/pkg/bininfo.Version=v1.2.0"
package bininfo

import "time"

var (
	// Version is the SemVer version of the binary, optionally suffixed with +<commit>.
	Version = "v0.0.0"

	// BuildTime is the RFC3339 time at which the binary was built.
	BuildTime = "1970-01-01T00:00:00Z"
)

// BuiltAt parses BuildTime. A malformed value yields the zero time.
func BuiltAt() time.Time {
	t, err := time.Parse(time.RFC3339, BuildTime)
	if err != nil {
		return time.Time{}
	}
	return t
}
