// Package hosttest provides in-memory host implementations for tests.
package hosttest

import (
	"context"
	"sync"

	"frameworkicons/pkg/host"
)

// Update records one Configuration.Update call.
type Update struct {
	Key   string
	Value any
	Scope host.Scope
}

// Config is an in-memory configuration store. Workspace values shadow
// global ones, matching the editor's resolution order.
type Config struct {
	mu        sync.Mutex
	global    map[string]any
	workspace map[string]any
	updates   []Update

	// Err, when set, is returned by Update without storing the value.
	Err error
	// OnUpdate is called after every successful update.
	OnUpdate func(Update)
}

func NewConfig(values map[string]any) *Config {
	c := &Config{global: map[string]any{}, workspace: map[string]any{}}
	for k, v := range values {
		c.global[k] = v
	}
	return c
}

func (c *Config) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.workspace[key]; ok {
		return v, true
	}
	v, ok := c.global[key]
	return v, ok
}

func (c *Config) Update(ctx context.Context, key string, value any, scope host.Scope) error {
	c.mu.Lock()
	u := Update{Key: key, Value: value, Scope: scope}
	c.updates = append(c.updates, u)
	if c.Err != nil {
		c.mu.Unlock()
		return c.Err
	}
	if scope == host.ScopeGlobal {
		c.global[key] = value
	} else {
		c.workspace[key] = value
	}
	fn := c.OnUpdate
	c.mu.Unlock()

	if fn != nil {
		fn(u)
	}
	return nil
}

// Set stores a global value without recording an update.
func (c *Config) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.global[key] = value
}

// Updates returns every recorded update, including failed ones.
func (c *Config) Updates() []Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Update(nil), c.updates...)
}

// UpdatesFor returns recorded updates of key.
func (c *Config) UpdatesFor(key string) []Update {
	var out []Update
	for _, u := range c.Updates() {
		if u.Key == key {
			out = append(out, u)
		}
	}
	return out
}

// Workspace is a fixed list of folders.
type Workspace struct {
	mu      sync.Mutex
	folders []host.Folder
}

func NewWorkspace(paths ...string) *Workspace {
	w := &Workspace{}
	w.SetPaths(paths...)
	return w
}

func (w *Workspace) Folders() []host.Folder {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]host.Folder(nil), w.folders...)
}

func (w *Workspace) SetPaths(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.folders = w.folders[:0]
	for _, p := range paths {
		w.folders = append(w.folders, host.Folder{Name: p, Path: p})
	}
}

// UI records messages and answers quick picks with Pick.
type UI struct {
	mu       sync.Mutex
	messages []string
	offered  [][]host.PickItem

	// Pick selects the item with this value; empty dismisses the list.
	Pick string
}

func (u *UI) ShowInfo(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.messages = append(u.messages, msg)
}

func (u *UI) QuickPick(ctx context.Context, items []host.PickItem, placeholder string) (host.PickItem, bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.offered = append(u.offered, items)
	for _, it := range items {
		if u.Pick != "" && it.Value == u.Pick {
			return it, true, nil
		}
	}
	return host.PickItem{}, false, nil
}

func (u *UI) Messages() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.messages...)
}

func (u *UI) Offered() [][]host.PickItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([][]host.PickItem(nil), u.offered...)
}

// StatusItem keeps the last values written to it.
type StatusItem struct {
	Text    string
	Tooltip string
	Command string
	Visible bool
}

func (s *StatusItem) SetText(text string)       { s.Text = text }
func (s *StatusItem) SetTooltip(tooltip string) { s.Tooltip = tooltip }
func (s *StatusItem) SetCommand(id string)      { s.Command = id }
func (s *StatusItem) Show()                     { s.Visible = true }
func (s *StatusItem) Hide()                     { s.Visible = false }

// Host wires the fakes together.
type Host struct {
	Config    *Config
	Folders   *Workspace
	Interface *UI
	Registry  *host.Registry
	Bus       *host.Bus
	Items     []*StatusItem
}

func NewHost(values map[string]any, paths ...string) *Host {
	return &Host{
		Config:    NewConfig(values),
		Folders:   NewWorkspace(paths...),
		Interface: &UI{},
		Registry:  host.NewRegistry(),
		Bus:       host.NewBus(),
	}
}

func (h *Host) Configuration() host.Configuration { return h.Config }
func (h *Host) Workspace() host.Workspace         { return h.Folders }
func (h *Host) UI() host.UI                       { return h.Interface }
func (h *Host) Commands() host.Commands           { return h.Registry }
func (h *Host) Events() host.Events               { return h.Bus }

func (h *Host) CreateStatusItem() host.StatusItem {
	item := &StatusItem{}
	h.Items = append(h.Items, item)
	return item
}
