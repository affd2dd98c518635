package util

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPath is returned when a path is built from no segments.
var ErrInvalidPath = errors.New("at least one path segment expected")

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// TaskgenConfigPath returns the taskgen configuration directory
func TaskgenConfigPath() string {
	return filepath.Join(HomeDir(), ".taskgen")
}

// BuildPath joins segments with the platform separator and collapses doubled
// separators. It performs no other cleaning: "." and ".." are kept as given.
func BuildPath(segments ...string) (string, error) {
	if len(segments) == 0 {
		return "", ErrInvalidPath
	}

	sep := string(os.PathSeparator)
	path := strings.Join(segments, sep)
	for strings.Contains(path, sep+sep) {
		path = strings.ReplaceAll(path, sep+sep, sep)
	}

	return path, nil
}

// ExpandPath expands a leading ~ to the home directory and resolves relative
// paths against baseDir. An empty path stays empty.
func ExpandPath(path, baseDir string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}

	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
