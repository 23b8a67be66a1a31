package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateProjectPath checks that projectPath is an accessible directory and
// returns it cleaned and absolute.
func ValidateProjectPath(projectPath string) (string, error) {
	if projectPath == "" {
		projectPath = "."
	}
	projectPath = filepath.Clean(projectPath)

	info, err := os.Stat(projectPath)
	if err != nil {
		return "", fmt.Errorf("cannot access path '%s': %w", projectPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", projectPath)
	}

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return projectPath, nil
	}
	return absPath, nil
}

// ValidateProjectPaths validates every path and drops repeats, keeping the
// first occurrence so the first root stays first.
func ValidateProjectPaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool, len(paths))
	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := ValidateProjectPath(p)
		if err != nil {
			return nil, err
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		roots = append(roots, abs)
	}
	return roots, nil
}
