// Package local implements the host interfaces on top of settings files on
// disk and a terminal.
package local

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/host"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle   = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	statusStyle = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PickFunc presents a selection list. The cmd layer supplies an interactive
// picker; a nil PickFunc behaves like a dismissed list.
type PickFunc func(ctx context.Context, items []host.PickItem, placeholder string) (host.PickItem, bool, error)

// Host is a host.Host for a terminal session. The first root's
// .vscode/settings.json receives workspace scoped updates.
type Host struct {
	store    *config.Store
	folders  []host.Folder
	ui       *UI
	registry *host.Registry
	bus      *host.Bus
	out      io.Writer

	mu    sync.Mutex
	items []*StatusItem
}

// New creates a host over roots. userSettings is the user settings file.
func New(userSettings string, roots []string, out io.Writer, pick PickFunc) *Host {
	folders := make([]host.Folder, 0, len(roots))
	for _, r := range roots {
		folders = append(folders, host.Folder{Name: filepath.Base(r), Path: r})
	}

	workspaceSettings := ""
	if len(folders) > 0 {
		workspaceSettings = config.GetWorkspaceSettingsPath(folders[0].Path)
	}

	return &Host{
		store:    config.NewStore(userSettings, workspaceSettings),
		folders:  folders,
		ui:       &UI{out: out, pick: pick},
		registry: host.NewRegistry(),
		bus:      host.NewBus(),
		out:      out,
	}
}

func (h *Host) Configuration() host.Configuration { return h.store }

// Store exposes the settings store backing Configuration.
func (h *Host) Store() *config.Store { return h.store }

func (h *Host) Workspace() host.Workspace { return h }

func (h *Host) Folders() []host.Folder {
	return append([]host.Folder(nil), h.folders...)
}

func (h *Host) UI() host.UI { return h.ui }

func (h *Host) Commands() host.Commands { return h.registry }

func (h *Host) Events() host.Events { return h.bus }

// Publish delivers ev to every subscriber.
func (h *Host) Publish(ev host.Event) {
	h.bus.Publish(ev)
}

func (h *Host) CreateStatusItem() host.StatusItem {
	h.mu.Lock()
	defer h.mu.Unlock()

	item := &StatusItem{out: h.out}
	h.items = append(h.items, item)
	return item
}

// StatusItems returns the items created so far.
func (h *Host) StatusItems() []*StatusItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*StatusItem(nil), h.items...)
}

// UI prints notifications and delegates selection lists to a PickFunc.
type UI struct {
	mu   sync.Mutex
	out  io.Writer
	pick PickFunc
}

func (u *UI) ShowInfo(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.out, infoStyle.Render(msg))
}

func (u *UI) QuickPick(ctx context.Context, items []host.PickItem, placeholder string) (host.PickItem, bool, error) {
	if u.pick == nil {
		return host.PickItem{}, false, nil
	}
	return u.pick(ctx, items, placeholder)
}

// StatusItem prints a status line whenever its visible text changes.
type StatusItem struct {
	mu      sync.Mutex
	out     io.Writer
	text    string
	tooltip string
	command string
	visible bool
}

func (s *StatusItem) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text == s.text {
		return
	}
	s.text = text
	if s.visible {
		s.render()
	}
}

func (s *StatusItem) SetTooltip(tooltip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tooltip = tooltip
}

func (s *StatusItem) SetCommand(commandID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.command = commandID
}

func (s *StatusItem) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible {
		return
	}
	s.visible = true
	if s.text != "" {
		s.render()
	}
}

func (s *StatusItem) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
}

// Text returns the current text.
func (s *StatusItem) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Tooltip returns the current tooltip.
func (s *StatusItem) Tooltip() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tooltip
}

// Command returns the command bound to a click.
func (s *StatusItem) Command() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.command
}

func (s *StatusItem) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// line renders the item the way it is printed. Callers hold s.mu.
func (s *StatusItem) line() string {
	line := statusStyle.Render(s.text)
	if s.command != "" {
		line += " " + hintStyle.Render(s.command)
	}
	return line
}

func (s *StatusItem) render() {
	fmt.Fprintln(s.out, s.line())
}
