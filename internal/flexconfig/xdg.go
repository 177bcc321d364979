package flexconfig

import (
	"os"
	"path/filepath"
)

// searchPaths returns the config file locations flexacc checks, in
// priority order: XDG config dir, dotfile in $HOME, then the current
// directory. Grounded on config/xdg.go's GetAppConfigPaths, trimmed to
// this tool's single app name (no legacy-name fallback needed).
func searchPaths() []string {
	home, _ := os.UserHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" && home != "" {
		configHome = filepath.Join(home, ".config")
	}

	var paths []string
	if configHome != "" {
		paths = append(paths, filepath.Join(configHome, "flexacc", "config.yaml"))
	}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".flexacc.yaml"))
	}
	paths = append(paths, "./flexacc.yaml")
	return paths
}

// firstExisting returns the first path in paths that exists on disk, or
// "" if none do.
func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
