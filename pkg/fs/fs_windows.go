//go:build windows

package fs

import (
	"os"
	"path/filepath"
)

// FileLock acquires a file lock and returns an unlock function.
// Windows has no flock; the lock file itself serves as the indicator that
// the file is held.
func (f *realFS) FileLock(filename string) (func(), error) {
	// Create lock file path
	lockPath := filename + ".lock"

	// Ensure parent directory exists before creating lock file
	lockDir := filepath.Dir(lockPath)
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, err
	}

	// Create lock file
	lockFile, err := os.Create(lockPath)
	if err != nil {
		return nil, err
	}

	// Return unlock function that removes the lock file
	unlock := func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}

	return unlock, nil
}
