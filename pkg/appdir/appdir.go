// Package appdir locates the per-user strhash directory (~/.strhash),
// used as a search path for the configuration file.
package appdir

import (
	"os"
	"path"
)

var appDirCache string

// AppDir returns the per-user strhash directory, or "" when the home
// directory cannot be determined.
func AppDir() string {
	if appDirCache == "" {
		s, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		appDirCache = path.Join(s, ".strhash")
	}
	return appDirCache
}
