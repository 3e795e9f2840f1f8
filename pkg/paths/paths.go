// Package paths provides centralized path handling for svglet, following
// the XDG Base Directory specification.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvLogFile overrides the log file location
	EnvLogFile = "SVGLET_LOG_FILE"
)

const appName = "svglet"

// LogFilePath returns the path to the log file, created under the XDG state
// directory (~/.local/state/svglet/svglet.log by default).
func LogFilePath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// ConfigSearch looks up a chart definition file relative to the XDG config
// directories when it does not exist as given. Returns the input path
// unchanged if no config-dir copy is found, leaving the open error to the
// caller.
func ConfigSearch(name string) string {
	if found, err := xdg.SearchConfigFile(filepath.Join(appName, name)); err == nil {
		return found
	}
	return name
}
