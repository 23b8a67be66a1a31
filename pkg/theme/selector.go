package theme

import (
	"context"
	"log/slog"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
)

// Selector reads the extension settings and asks the Applier for a label.
type Selector struct {
	cfg     host.Configuration
	applier *Applier
	log     *slog.Logger
}

func NewSelector(cfg host.Configuration, applier *Applier, log *slog.Logger) *Selector {
	if log == nil {
		log = slog.Default()
	}
	return &Selector{cfg: cfg, applier: applier, log: log}
}

// Request returns the label the current settings ask for and whether the
// feature is enabled at all.
func (s *Selector) Request() (framework.Label, bool) {
	if !host.GetBool(s.cfg, config.KeyEnabled, config.DefaultEnabled) {
		return "", false
	}
	if host.GetBool(s.cfg, config.KeyDetectFramework, config.DefaultDetectFramework) {
		return framework.Auto, true
	}

	manual := host.GetString(s.cfg, config.KeyManualFramework, config.DefaultManualFramework)
	label, err := framework.ParseLabel(manual)
	if err != nil {
		// Unlisted values still reach the applier and fall back to the default theme.
		s.log.Warn("unrecognised manual framework", "value", manual)
		return framework.Label(manual), true
	}
	return label, true
}

// Refresh applies whatever the settings currently request. It does nothing
// when the feature is disabled.
func (s *Selector) Refresh(ctx context.Context) {
	label, enabled := s.Request()
	if !enabled {
		s.log.Debug("framework icons disabled")
		return
	}
	s.applier.Apply(ctx, label)
}

// Applier returns the applier driven by this selector.
func (s *Selector) Applier() *Applier {
	return s.applier
}
