// Package qmc minimizes Boolean functions given as minterm lists using the
// Quine-McCluskey method. The engine lives in internal/qm and the command
// line front end in cmd/qmc.
package qmc

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version is the release in VERSION, or "dev" for an empty file.
func Version() string {
	if v := strings.TrimSpace(versionRaw); v != "" {
		return v
	}
	return "dev"
}
