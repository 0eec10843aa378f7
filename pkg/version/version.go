package version

import (
	_ "embed"
	"strings"
)

//go:embed version.txt
var versionFile string

// Version is the release recorded in version.txt, bumped by hand on release.
func Version() string {
	return strings.TrimSpace(versionFile)
}

// GetBuildID is what `dlctl --version` prints.
func GetBuildID() string {
	return Version()
}
