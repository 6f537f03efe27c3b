// fsutil/files.go
package fsutil

import (
	"fmt"
	"os"
)

// FileExists checks if a file exists and is not a directory
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CreateOutputFile creates (or truncates) path for writing, creating its
// parent directory first
func CreateOutputFile(path string) (*os.File, error) {
	dir, _ := SplitPath(path)
	if dir != "" {
		if err := CreateDirIfNotExists(dir); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return os.Create(path)
}
