// Package extension wires detection, theme selection and the status bar to
// a host: it registers the commands, follows host notifications and releases
// everything on Dispose.
package extension

import (
	"context"
	"log/slog"
	"sync"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/detector"
	"frameworkicons/pkg/host"
	"frameworkicons/pkg/statusbar"
	"frameworkicons/pkg/theme"
)

const (
	DetectCommand = "frameworkIcons.detectFramework"
	CycleCommand  = statusbar.CycleCommand

	// DetectedMessage is shown after an explicit detect command.
	DetectedMessage = "Framework Icons: icon theme updated!"
)

// Extension is one activation. Handlers run one at a time.
type Extension struct {
	host      host.Host
	detector  *detector.Detector
	selector  *theme.Selector
	indicator *statusbar.Indicator
	log       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	disposables []host.Disposable
	disposed    bool
}

// Activate builds the components, applies the theme once and starts
// following configuration and workspace changes.
func Activate(ctx context.Context, h host.Host, log *slog.Logger) *Extension {
	if log == nil {
		log = slog.Default()
	}

	cfg := h.Configuration()
	det := detector.New(h.Workspace(), log)
	applier := theme.NewApplier(cfg, det, log)
	sel := theme.NewSelector(cfg, applier, log)

	e := &Extension{
		host:     h,
		detector: det,
		selector: sel,
		log:      log,
	}
	e.ctx, e.cancel = context.WithCancel(context.WithoutCancel(ctx))
	e.indicator = statusbar.New(h.CreateStatusItem(), cfg, h.UI(), sel, log)

	log.Info("framework icons activated")

	e.mu.Lock()
	e.update(ctx)
	e.mu.Unlock()

	cmds := h.Commands()
	e.track(cmds.Register(DetectCommand, e.detectNow))
	e.track(cmds.Register(CycleCommand, e.cycle))
	e.track(h.Events().Subscribe(e.onEvent))

	return e
}

func (e *Extension) track(d host.Disposable) {
	e.disposables = append(e.disposables, d)
}

// update re-runs selection and repaints the indicator. Callers hold e.mu.
func (e *Extension) update(ctx context.Context) {
	e.selector.Refresh(ctx)
	e.indicator.Refresh(ctx)
}

func (e *Extension) onEvent(ev host.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}

	switch ev.Kind {
	case host.ConfigurationChanged:
		if ev.AffectsConfiguration(config.Section) {
			e.log.Debug("configuration changed", "keys", ev.Keys)
			e.update(e.ctx)
		} else if ev.AffectsConfiguration(config.KeyIconTheme) {
			e.indicator.Refresh(e.ctx)
		}
	case host.WorkspaceFoldersChanged:
		e.log.Debug("workspace folders changed")
		e.update(e.ctx)
	}
}

func (e *Extension) detectNow(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.update(ctx)
	e.host.UI().ShowInfo(DetectedMessage)
	return nil
}

func (e *Extension) cycle(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.indicator.Cycle(ctx); err != nil {
		e.log.Error("cycle framework failed", "error", err)
		return err
	}
	return nil
}

// Detector exposes the detector bound to the host workspace.
func (e *Extension) Detector() *detector.Detector { return e.detector }

// Selector exposes the theme selector.
func (e *Extension) Selector() *theme.Selector { return e.selector }

// Indicator exposes the status bar indicator.
func (e *Extension) Indicator() *statusbar.Indicator { return e.indicator }

// Dispose unregisters commands and subscriptions in reverse order. It is
// safe to call more than once.
func (e *Extension) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	e.disposed = true
	e.cancel()

	for i := len(e.disposables) - 1; i >= 0; i-- {
		e.disposables[i].Dispose()
	}
	e.disposables = nil
	e.log.Info("framework icons deactivated")
}
