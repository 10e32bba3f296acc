package tripwizard

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the release version of the module.
func Version() string {
	return strings.TrimSpace(version)
}
