// Package version exposes the build version of postpager.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is set at build time via -ldflags "-X github.com/rshade/postpager/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Overridden by the linker.

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// IsRelease reports whether v is a valid semantic version. Development
// builds ("dev", commit hashes) are not releases.
func IsRelease(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}
