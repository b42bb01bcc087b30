package diagfmt

import (
	"os"
	"path/filepath"
)

func formatPath(stored string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(stored); err == nil {
			return filepath.ToSlash(abs)
		}
		return stored
	case PathModeRelative, PathModeAuto:
		wd, err := os.Getwd()
		if err != nil {
			return stored
		}
		rel, err := filepath.Rel(wd, stored)
		if err != nil {
			return stored
		}
		if mode == PathModeAuto && len(rel) > len(stored) {
			return stored
		}
		return filepath.ToSlash(rel)
	case PathModeBasename:
		return filepath.Base(stored)
	default:
		return stored
	}
}
