package local

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T, pick PickFunc) (*Host, string, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	user := filepath.Join(t.TempDir(), "settings.json")
	var out bytes.Buffer
	return New(user, []string{root}, &out, pick), root, &out
}

func TestHost_Folders(t *testing.T) {
	h, root, _ := newTestHost(t, nil)

	folders := h.Workspace().Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, root, folders[0].Path)
	assert.Equal(t, filepath.Base(root), folders[0].Name)

	_, workspace := h.Store().Paths()
	assert.Equal(t, config.GetWorkspaceSettingsPath(root), workspace)
}

func TestHost_NoFolders(t *testing.T) {
	var out bytes.Buffer
	h := New(filepath.Join(t.TempDir(), "settings.json"), nil, &out, nil)

	assert.Empty(t, h.Workspace().Folders())
	err := h.Configuration().Update(context.Background(), config.KeyIconTheme, "x", host.ScopeWorkspace)
	assert.ErrorIs(t, err, config.ErrNoWorkspace)
}

func TestHost_WorkspaceUpdateLandsInProject(t *testing.T) {
	h, root, _ := newTestHost(t, nil)

	err := h.Configuration().Update(context.Background(), config.KeyIconTheme, "framework-icons-vue", host.ScopeWorkspace)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, ".vscode", "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "framework-icons-vue")

	assert.Equal(t, "framework-icons-vue", host.GetString(h.Configuration(), config.KeyIconTheme, ""))
}

func TestUI_ShowInfo(t *testing.T) {
	h, _, out := newTestHost(t, nil)

	h.UI().ShowInfo("Framework changed to: vue")
	assert.Contains(t, out.String(), "Framework changed to: vue")
}

func TestUI_QuickPick(t *testing.T) {
	items := []host.PickItem{{Label: "React", Value: "react"}, {Label: "Vue", Value: "vue"}}

	t.Run("nil picker dismisses", func(t *testing.T) {
		h, _, _ := newTestHost(t, nil)
		_, ok, err := h.UI().QuickPick(context.Background(), items, "Select a framework")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delegates to picker", func(t *testing.T) {
		var gotPlaceholder string
		pick := func(_ context.Context, items []host.PickItem, placeholder string) (host.PickItem, bool, error) {
			gotPlaceholder = placeholder
			return items[1], true, nil
		}
		h, _, _ := newTestHost(t, pick)

		item, ok, err := h.UI().QuickPick(context.Background(), items, "Select a framework")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "vue", item.Value)
		assert.Equal(t, "Select a framework", gotPlaceholder)
	})

	t.Run("picker error", func(t *testing.T) {
		boom := errors.New("no tty")
		pick := func(context.Context, []host.PickItem, string) (host.PickItem, bool, error) {
			return host.PickItem{}, false, boom
		}
		h, _, _ := newTestHost(t, pick)

		_, _, err := h.UI().QuickPick(context.Background(), items, "")
		assert.ErrorIs(t, err, boom)
	})
}

func TestStatusItem_PrintsOnlyWhenVisible(t *testing.T) {
	h, _, out := newTestHost(t, nil)
	item := h.CreateStatusItem()

	item.SetCommand("frameworkIcons.cycleFramework")
	item.SetText("$(zap) react")
	assert.Empty(t, out.String())

	item.Show()
	assert.Contains(t, out.String(), "$(zap) react")
	assert.Contains(t, out.String(), "frameworkIcons.cycleFramework")

	// Same text again is not reprinted.
	item.SetText("$(zap) react")
	assert.Equal(t, 1, strings.Count(out.String(), "$(zap) react"))

	item.SetTooltip("Current framework: react")
	item.SetText("$(beaker) vue")
	assert.Contains(t, out.String(), "$(beaker) vue")

	item.Hide()
	out.Reset()
	item.SetText("$(flame) angular")
	assert.Empty(t, out.String())

	items := h.StatusItems()
	require.Len(t, items, 1)
	assert.Equal(t, "$(flame) angular", items[0].Text())
	assert.Equal(t, "Current framework: react", items[0].Tooltip())
	assert.Equal(t, "frameworkIcons.cycleFramework", items[0].Command())
	assert.False(t, items[0].Visible())
}

func TestHost_CommandsAndEvents(t *testing.T) {
	h, _, _ := newTestHost(t, nil)

	ran := false
	d := h.Commands().Register("frameworkIcons.detectFramework", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, h.Commands().Execute(context.Background(), "frameworkIcons.detectFramework"))
	assert.True(t, ran)
	d.Dispose()
	assert.Error(t, h.Commands().Execute(context.Background(), "frameworkIcons.detectFramework"))

	var got []host.Event
	sub := h.Events().Subscribe(func(ev host.Event) { got = append(got, ev) })
	h.Publish(host.Event{Kind: host.WorkspaceFoldersChanged})
	sub.Dispose()
	h.Publish(host.Event{Kind: host.WorkspaceFoldersChanged})
	assert.Len(t, got, 1)
}
