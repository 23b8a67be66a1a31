package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjectPath(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		setup    func() string
		errorMsg string
	}{
		{
			name: "valid directory",
			setup: func() string {
				dir := filepath.Join(tmpDir, "valid_dir")
				require.NoError(t, os.Mkdir(dir, 0755))
				return dir
			},
		},
		{
			name: "non-existent path",
			setup: func() string {
				return filepath.Join(tmpDir, "nonexistent")
			},
			errorMsg: "cannot access path",
		},
		{
			name: "file instead of directory",
			setup: func() string {
				file := filepath.Join(tmpDir, "package.json")
				require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))
				return file
			},
			errorMsg: "is not a directory",
		},
		{
			name: "path with trailing slash",
			setup: func() string {
				dir := filepath.Join(tmpDir, "trailing_slash")
				require.NoError(t, os.Mkdir(dir, 0755))
				return dir + "/"
			},
		},
		{
			name: "messy path",
			setup: func() string {
				dir := filepath.Join(tmpDir, "messy")
				require.NoError(t, os.Mkdir(dir, 0755))
				return filepath.Join(tmpDir, "messy", "..", "messy", ".")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateProjectPath(tt.setup())
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(result))
			assert.Equal(t, filepath.Clean(result), result)
		})
	}
}

func TestValidateProjectPath_EmptyMeansWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	result, err := ValidateProjectPath("")
	require.NoError(t, err)
	assert.Equal(t, wd, result)
}

func TestValidateProjectPath_Symlink(t *testing.T) {
	tmpDir := t.TempDir()
	realDir := filepath.Join(tmpDir, "real")
	require.NoError(t, os.Mkdir(realDir, 0755))

	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	result, err := ValidateProjectPath(link)
	require.NoError(t, err)
	info, err := os.Stat(result)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestValidateProjectPaths(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	roots, err := ValidateProjectPaths([]string{a, b, a + "/", b})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, roots)

	_, err = ValidateProjectPaths([]string{a, filepath.Join(b, "missing")})
	assert.Error(t, err)

	roots, err = ValidateProjectPaths(nil)
	require.NoError(t, err)
	assert.Len(t, roots, 1)
}
