// Package host describes the editor capabilities the icon switcher relies on.
// Every observable effect goes through one of these interfaces.
package host

import (
	"context"
	"strings"
)

// Scope selects which settings storage an update targets.
type Scope int

const (
	ScopeWorkspace Scope = iota
	ScopeGlobal
)

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "workspace"
}

// Configuration is the host settings store. Keys are fully qualified,
// e.g. "frameworkIcons.enabled" or "workbench.iconTheme".
type Configuration interface {
	Get(key string) (any, bool)
	Update(ctx context.Context, key string, value any, scope Scope) error
}

// Folder is an open project root.
type Folder struct {
	Name string
	Path string
}

// Workspace enumerates open project roots.
type Workspace interface {
	Folders() []Folder
}

// PickItem is one entry of a quick pick list.
type PickItem struct {
	Label       string
	Description string
	Value       string
}

// UI covers notifications and selection prompts.
type UI interface {
	ShowInfo(msg string)
	// QuickPick returns ok=false when the user dismisses the list.
	QuickPick(ctx context.Context, items []PickItem, placeholder string) (item PickItem, ok bool, err error)
}

// StatusItem is a single status bar entry.
type StatusItem interface {
	SetText(text string)
	SetTooltip(tooltip string)
	SetCommand(commandID string)
	Show()
	Hide()
}

// Disposable releases a registration.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable.
type DisposeFunc func()

func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}

// Handler runs a registered command.
type Handler func(ctx context.Context) error

// Commands binds command identifiers to handlers.
type Commands interface {
	Register(id string, h Handler) Disposable
	Execute(ctx context.Context, id string) error
}

// EventKind distinguishes host notifications.
type EventKind int

const (
	ConfigurationChanged EventKind = iota
	WorkspaceFoldersChanged
)

func (k EventKind) String() string {
	switch k {
	case ConfigurationChanged:
		return "configuration-changed"
	case WorkspaceFoldersChanged:
		return "workspace-folders-changed"
	}
	return "unknown"
}

// Event is a host notification. Keys lists the changed configuration keys
// for ConfigurationChanged events.
type Event struct {
	Kind EventKind
	Keys []string
}

// AffectsConfiguration reports whether any changed key lives in section.
func (e Event) AffectsConfiguration(section string) bool {
	if e.Kind != ConfigurationChanged {
		return false
	}
	for _, k := range e.Keys {
		if k == section || strings.HasPrefix(k, section+".") {
			return true
		}
	}
	return false
}

// Events delivers host notifications to subscribers.
type Events interface {
	Subscribe(fn func(Event)) Disposable
}

// Host aggregates every capability the extension uses.
type Host interface {
	Configuration() Configuration
	Workspace() Workspace
	UI() UI
	Commands() Commands
	Events() Events
	CreateStatusItem() StatusItem
}

// GetBool reads a boolean setting, returning def when absent or mistyped.
func GetBool(c Configuration, key string, def bool) bool {
	v, ok := c.Get(key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// GetString reads a string setting, returning def when absent or mistyped.
func GetString(c Configuration, key string, def string) string {
	v, ok := c.Get(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}
