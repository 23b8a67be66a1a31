package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"frameworkicons/pkg/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestStore(t *testing.T) (*Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	user := filepath.Join(dir, "user", "settings.json")
	ws := GetWorkspaceSettingsPath(filepath.Join(dir, "project"))
	return NewStore(user, ws), user, ws
}

func TestGetMissingFiles(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, ok := s.Get(KeyEnabled)
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot())
}

func TestGetReadsJSONC(t *testing.T) {
	s, user, _ := newTestStore(t)
	writeFile(t, user, `{
		// comment
		"frameworkIcons.enabled": false,
		"workbench.iconTheme": "vs-seti", /* trailing */
	}`)

	v, ok := s.Get(KeyEnabled)
	require.True(t, ok)
	assert.Equal(t, false, v)

	v, ok = s.Get(KeyIconTheme)
	require.True(t, ok)
	assert.Equal(t, "vs-seti", v)
}

func TestGetNestedForm(t *testing.T) {
	s, user, _ := newTestStore(t)
	writeFile(t, user, `{"frameworkIcons": {"manualFramework": "vue"}}`)

	v, ok := s.Get(KeyManualFramework)
	require.True(t, ok)
	assert.Equal(t, "vue", v)
}

func TestWorkspaceShadowsUser(t *testing.T) {
	s, user, ws := newTestStore(t)
	writeFile(t, user, `{"workbench.iconTheme": "vs-seti", "frameworkIcons.enabled": true}`)
	writeFile(t, ws, `{"workbench.iconTheme": "framework-icons-vue"}`)

	v, _ := s.Get(KeyIconTheme)
	assert.Equal(t, "framework-icons-vue", v)

	v, _ = s.Get(KeyEnabled)
	assert.Equal(t, true, v)

	snap := s.Snapshot()
	assert.Equal(t, "framework-icons-vue", snap[KeyIconTheme])
	assert.Equal(t, true, snap[KeyEnabled])
}

func TestSnapshotFlattensNestedForm(t *testing.T) {
	s, user, ws := newTestStore(t)
	writeFile(t, user, `{"frameworkIcons": {"enabled": false, "manualFramework": "vue"}, "files.exclude": {}}`)
	writeFile(t, ws, `{"frameworkIcons": {"manualFramework": "react"}, "workbench": {"iconTheme": "framework-icons-react"}}`)

	snap := s.Snapshot()
	assert.Equal(t, false, snap[KeyEnabled])
	assert.Equal(t, "react", snap[KeyManualFramework])
	assert.Equal(t, "framework-icons-react", snap[KeyIconTheme])
	assert.Contains(t, snap, "files.exclude")
	assert.NotContains(t, snap, Section)
	assert.NotContains(t, snap, "workbench")
}

func TestNewStoreResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	s := NewStore("./user/settings.json", "")
	user, ws := s.Paths()
	assert.True(t, filepath.IsAbs(user))
	assert.Equal(t, "settings.json", filepath.Base(user))
	assert.Empty(t, ws)

	require.NoError(t, s.Update(context.Background(), KeyEnabled, false, host.ScopeGlobal))
	_, err := os.Stat(filepath.Join(dir, "user", "settings.json"))
	assert.NoError(t, err)
}

func TestUpdateCreatesFile(t *testing.T) {
	s, _, ws := newTestStore(t)

	err := s.Update(context.Background(), KeyIconTheme, "framework-icons-react", host.ScopeWorkspace)
	require.NoError(t, err)

	_, err = os.Stat(ws)
	require.NoError(t, err)

	v, ok := s.Get(KeyIconTheme)
	require.True(t, ok)
	assert.Equal(t, "framework-icons-react", v)
}

func TestUpdatePreservesComments(t *testing.T) {
	s, user, _ := newTestStore(t)
	writeFile(t, user, `{
	// keep me
	"frameworkIcons.detectFramework": true,
	"editor.fontSize": 14,
}`)

	ctx := context.Background()
	require.NoError(t, s.Update(ctx, KeyDetectFramework, false, host.ScopeGlobal))
	require.NoError(t, s.Update(ctx, KeyManualFramework, "angular", host.ScopeGlobal))

	data, err := os.ReadFile(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), "// keep me")

	v, _ := s.Get(KeyDetectFramework)
	assert.Equal(t, false, v)
	v, _ = s.Get(KeyManualFramework)
	assert.Equal(t, "angular", v)
	v, _ = s.Get("editor.fontSize")
	assert.Equal(t, float64(14), v)
}

func TestUpdateWorkspaceWithoutFolder(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "settings.json"), "")

	err := s.Update(context.Background(), KeyIconTheme, "framework-icons-vue", host.ScopeWorkspace)
	assert.True(t, errors.Is(err, ErrNoWorkspace))
}

func TestUpdateMalformedFile(t *testing.T) {
	s, user, _ := newTestStore(t)
	writeFile(t, user, `{"broken": `)

	err := s.Update(context.Background(), KeyEnabled, true, host.ScopeGlobal)
	assert.Error(t, err)
}

func TestUpdateCancelledContext(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.Update(ctx, KeyEnabled, true, host.ScopeGlobal))
}

func TestGetUserSettingsPathEnv(t *testing.T) {
	t.Setenv(UserSettingsEnv, "/tmp/custom/settings.json")
	assert.Equal(t, "/tmp/custom/settings.json", GetUserSettingsPath())
}

func TestGetWorkspaceSettingsPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/p", ".vscode", "settings.json"), GetWorkspaceSettingsPath("/p"))
}
