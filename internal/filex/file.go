// Package filex holds filesystem helpers for locating client data files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubdDir creates dirName under the working directory if needed and
// returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// DataFile resolves the local database path. Absolute paths are used as is
// after their parent directory is created; relative ones land in a "data"
// directory under the working directory.
func DataFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
		}
		return path, nil
	}

	dir, err := EnsureSubdDir("data")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, path), nil
}
