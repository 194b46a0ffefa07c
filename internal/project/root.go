package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ConfigFileName is the project file looked up from the working directory.
const ConfigFileName = "nyanfmt.toml"

// FindConfigFile returns the nearest nyanfmt.toml in startDir or one of its
// parents. ok is false when the walk reaches the filesystem root.
func FindConfigFile(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && !info.IsDir():
			return candidate, true, nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// FindProjectRoot returns the directory holding nyanfmt.toml.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	path, ok, err := FindConfigFile(startDir)
	if !ok {
		return "", false, err
	}
	return filepath.Dir(path), true, nil
}
