package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"frameworkicons/cmd/ui/picker"
	"frameworkicons/pkg/config"
	"frameworkicons/pkg/detector"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
	"frameworkicons/pkg/host/local"
	"frameworkicons/pkg/theme"
	"frameworkicons/pkg/util"

	"github.com/spf13/cobra"
)

// logger is configured from --log-level before any command runs.
var logger = slog.Default()

func setupLogging(cmd *cobra.Command, args []string) error {
	l, err := newLogger(os.Stderr, logLevel)
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(l)
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// projectPathOrExit returns the absolute project path named by args, or the
// working directory, and exits if it is not a directory.
func projectPathOrExit(args []string) string {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	abs, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return abs
}

func resolveUserSettings() string {
	if userSettingsPath != "" {
		return userSettingsPath
	}
	return config.GetUserSettingsPath()
}

// newHost creates a terminal host over roots. Output is suppressed in JSON
// mode so stdout stays machine readable.
func newHost(roots []string, pick local.PickFunc) *local.Host {
	var out io.Writer = os.Stdout
	if jsonOutput {
		out = io.Discard
	}
	return local.New(resolveUserSettings(), roots, out, pick)
}

// interactivePicker returns the bubbletea picker when a terminal is
// attached. current reports the value the cursor starts on.
func interactivePicker(current func() string) local.PickFunc {
	if !interactive() {
		return nil
	}
	return func(ctx context.Context, items []host.PickItem, placeholder string) (host.PickItem, bool, error) {
		return picker.Run(ctx, items, placeholder, current())
	}
}

// valuePicker selects the item whose value is value without prompting.
func valuePicker(value string) local.PickFunc {
	return func(_ context.Context, items []host.PickItem, _ string) (host.PickItem, bool, error) {
		for _, item := range items {
			if item.Value == value {
				return item, true, nil
			}
		}
		return host.PickItem{}, false, fmt.Errorf("%q is not one of the offered frameworks", value)
	}
}

// applyFramework activates the theme of label for projectPath and returns
// the theme that ended up active. The applier only logs update failures, so
// the setting is read back to report them.
func applyFramework(ctx context.Context, projectPath string, label framework.Label) (string, error) {
	h := newHost([]string{projectPath}, nil)
	det := detector.New(h.Workspace(), logger)
	applier := theme.NewApplier(h.Configuration(), det, logger)

	applier.Apply(ctx, label)

	applied, _ := applier.Current()
	want := framework.ThemeID(applied)
	if got := host.GetString(h.Configuration(), config.KeyIconTheme, ""); got != want {
		return "", fmt.Errorf("icon theme is %q, expected %q (run with --log-level=error for details)", got, want)
	}
	return want, nil
}
