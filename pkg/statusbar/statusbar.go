// Package statusbar keeps the status bar entry in sync with the active icon
// theme and implements the cycle action.
//
// The indicator derives its label from the observed workbench.iconTheme
// setting rather than from the theme.Applier, so themes chosen outside the
// extension are reflected too.
package statusbar

import (
	"context"
	"fmt"
	"log/slog"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
)

// CycleCommand is bound to clicks on the status bar entry.
const CycleCommand = "frameworkIcons.cycleFramework"

// Refresher re-runs theme selection after the settings change.
type Refresher interface {
	Refresh(ctx context.Context)
}

type Indicator struct {
	item host.StatusItem
	cfg  host.Configuration
	ui   host.UI
	sel  Refresher
	log  *slog.Logger

	index int
}

func New(item host.StatusItem, cfg host.Configuration, ui host.UI, sel Refresher, log *slog.Logger) *Indicator {
	if log == nil {
		log = slog.Default()
	}
	item.SetCommand(CycleCommand)
	item.Show()
	return &Indicator{item: item, cfg: cfg, ui: ui, sel: sel, log: log}
}

// Refresh repaints the entry from the active icon theme setting.
func (i *Indicator) Refresh(ctx context.Context) {
	active := host.GetString(i.cfg, config.KeyIconTheme, "")
	label := framework.FromThemeID(active)

	i.index = framework.CycleIndex(label)
	i.item.SetText(Text(label))
	i.item.SetTooltip(fmt.Sprintf("Current framework: %s\nClick to change framework", label))

	i.log.Debug("status bar updated", "framework", label, "theme", active)
}

// Cycle lets the user pick a framework, pins it in the settings and
// re-applies the theme.
func (i *Indicator) Cycle(ctx context.Context) error {
	items := make([]host.PickItem, 0, len(framework.CycleOrder))
	for _, l := range framework.CycleOrder {
		items = append(items, host.PickItem{
			Label:       Text(l),
			Description: fmt.Sprintf("Switch to %s framework", l),
			Value:       string(l),
		})
	}

	picked, ok, err := i.ui.QuickPick(ctx, items, "Select a framework")
	if err != nil {
		return fmt.Errorf("framework selection failed: %w", err)
	}
	if !ok {
		return nil
	}
	label := framework.Label(picked.Value)

	if err := i.cfg.Update(ctx, config.KeyDetectFramework, false, host.ScopeGlobal); err != nil {
		return fmt.Errorf("failed to disable automatic detection: %w", err)
	}
	if err := i.cfg.Update(ctx, config.KeyManualFramework, string(label), host.ScopeGlobal); err != nil {
		return fmt.Errorf("failed to save manual framework: %w", err)
	}

	i.sel.Refresh(ctx)

	// Painted from the selection; not re-read from the settings.
	i.index = framework.CycleIndex(label)
	i.item.SetText(Text(label))
	i.item.SetTooltip(fmt.Sprintf("Current framework: %s", label))

	i.ui.ShowInfo(fmt.Sprintf("Framework changed to: %s", label))
	return nil
}

// Index is the position of the displayed label in framework.CycleOrder.
func (i *Indicator) Index() int {
	return i.index
}

// Current is the displayed label.
func (i *Indicator) Current() framework.Label {
	if i.index < 0 || i.index >= len(framework.CycleOrder) {
		return framework.Default
	}
	return framework.CycleOrder[i.index]
}

// Text formats the status bar text for a label.
func Text(l framework.Label) string {
	return fmt.Sprintf("%s %s", framework.StatusIcon(l), l)
}
