// Package watch turns filesystem activity into host notifications: edits to
// the settings documents become configuration changes and entries appearing
// or disappearing at a project root become workspace changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"time"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/host"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the bursts editors produce when saving.
const DefaultDebounce = 100 * time.Millisecond

// Settings is the part of config.Store the watcher needs.
type Settings interface {
	Snapshot() map[string]any
	Paths() (user, workspace string)
}

type Watcher struct {
	settings Settings
	roots    []string
	publish  func(host.Event)
	log      *slog.Logger
	debounce time.Duration

	last map[string]any
}

func New(settings Settings, roots []string, publish func(host.Event), log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	clean := make([]string, 0, len(roots))
	for _, r := range roots {
		clean = append(clean, absPath(r))
	}
	return &Watcher{
		settings: settings,
		roots:    clean,
		publish:  publish,
		log:      log,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides DefaultDebounce.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run watches until ctx is cancelled. It returns an error only when the
// watcher cannot be created.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	return w.run(ctx, fw, nil)
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, ready chan<- struct{}) error {
	w.last = w.settings.Snapshot()
	for _, dir := range w.watchDirs() {
		if err := fw.Add(dir); err != nil {
			w.log.Warn("cannot watch directory", "dir", dir, "error", err)
		}
	}
	if ready != nil {
		close(ready)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	var configDirty, workspaceDirty bool

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			c, ws := w.classify(fw, event)
			configDirty = configDirty || c
			workspaceDirty = workspaceDirty || ws
			if c || ws {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)
		case <-timer.C:
			if configDirty {
				w.flushConfig()
			}
			if workspaceDirty {
				w.publish(host.Event{Kind: host.WorkspaceFoldersChanged})
			}
			configDirty, workspaceDirty = false, false
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) watchDirs() []string {
	var dirs []string
	user, workspace := w.settings.Paths()
	for _, p := range []string{user, workspace} {
		if p == "" {
			continue
		}
		if dir := filepath.Dir(absPath(p)); dirExists(dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, r := range w.roots {
		if dirExists(r) {
			dirs = append(dirs, r)
		}
	}
	return dirs
}

// classify reports whether event touches the settings documents or the
// entries of a project root.
func (w *Watcher) classify(fw *fsnotify.Watcher, event fsnotify.Event) (configChange, workspaceChange bool) {
	name := absPath(event.Name)
	user, workspace := w.settings.Paths()

	if name == absPath(user) || (workspace != "" && name == absPath(workspace)) {
		return true, false
	}

	parent := filepath.Dir(name)
	for _, r := range w.roots {
		if parent != r {
			continue
		}
		if filepath.Base(name) == config.WorkspaceSettingsDir {
			// The settings directory was created or removed; follow it.
			if event.Has(fsnotify.Create) && dirExists(name) {
				if err := fw.Add(name); err != nil {
					w.log.Warn("cannot watch directory", "dir", name, "error", err)
				}
			}
			return true, false
		}
		if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Write) {
			return false, true
		}
	}
	return false, false
}

func (w *Watcher) flushConfig() {
	next := w.settings.Snapshot()
	keys := ChangedKeys(w.last, next)
	w.last = next
	if len(keys) == 0 {
		return
	}
	w.log.Debug("settings changed", "keys", keys)
	w.publish(host.Event{Kind: host.ConfigurationChanged, Keys: keys})
}

// ChangedKeys lists keys whose values differ between two snapshots, sorted.
func ChangedKeys(before, after map[string]any) []string {
	var keys []string
	for k, v := range after {
		if old, ok := before[k]; !ok || !reflect.DeepEqual(old, v) {
			keys = append(keys, k)
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
