// Package theme decides which icon theme to activate and applies it.
package theme

import (
	"context"
	"log/slog"
	"sync"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
)

// Detector resolves the Auto sentinel.
type Detector interface {
	Detect() framework.Label
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() framework.Label

func (f DetectorFunc) Detect() framework.Label { return f() }

// Applier switches the active icon theme. It remembers the last label it
// applied and skips repeat requests for the same label.
type Applier struct {
	cfg      host.Configuration
	detector Detector
	log      *slog.Logger

	mu      sync.Mutex
	current framework.Label
	applied bool
}

func NewApplier(cfg host.Configuration, detector Detector, log *slog.Logger) *Applier {
	if log == nil {
		log = slog.Default()
	}
	return &Applier{cfg: cfg, detector: detector, log: log}
}

// Apply activates the theme for label, resolving Auto through the detector.
// Update failures are logged, never returned. The label is recorded as
// applied before the update is attempted, so a failed update is not retried
// until a different label is requested.
func (a *Applier) Apply(ctx context.Context, label framework.Label) {
	if label == framework.Auto {
		label = a.detector.Detect()
	}

	a.mu.Lock()
	if a.applied && a.current == label {
		a.mu.Unlock()
		return
	}
	a.current = label
	a.applied = true
	a.mu.Unlock()

	themeID := framework.ThemeID(label)
	a.log.Info("switching icon theme", "framework", label, "theme", themeID)

	if err := a.cfg.Update(ctx, config.KeyIconTheme, themeID, host.ScopeWorkspace); err != nil {
		a.log.Error("failed to update icon theme", "theme", themeID, "error", err)
		return
	}
	a.log.Debug("icon theme activated", "theme", themeID)
}

// Current returns the last applied label; ok is false until the first Apply.
func (a *Applier) Current() (label framework.Label, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current, a.applied
}
