package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigName is the file that marks a project root and carries its settings.
const ConfigName = "ccheck.toml"

// walkUp calls match on startDir and each of its parents until match
// reports true or the filesystem root is passed.
func walkUp(startDir string, match func(dir string) (bool, error)) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		ok, err := match(dir)
		if err != nil {
			return "", false, err
		}
		if ok {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func exists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	return false, nil
}

// FindConfig walks up from startDir to locate ccheck.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	dir, ok, err := walkUp(startDir, func(dir string) (bool, error) {
		return exists(filepath.Join(dir, ConfigName))
	})
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Join(dir, ConfigName), true, nil
}

// FindProjectRoot returns the directory containing ccheck.toml or, failing
// that, the working tree root of the enclosing git repository.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	if path, ok, err := FindConfig(startDir); err != nil || ok {
		return filepath.Dir(path), ok, err
	}
	return walkUp(startDir, func(dir string) (bool, error) {
		return exists(filepath.Join(dir, ".git"))
	})
}
