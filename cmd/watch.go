package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"frameworkicons/pkg/extension"
	"frameworkicons/pkg/util"
	"frameworkicons/pkg/watch"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var watchCmd = &cobra.Command{
	Use:   "watch [PROJECT_PATH...]",
	Short: "Keep the icon theme in sync until interrupted",
	Long: `Activates against the given project roots and follows changes to the
settings files and to the project roots, re-applying the icon theme
whenever the framework or the frameworkIcons settings change.`,
	Run: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
	roots, err := util.ValidateProjectPaths(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := watchRoots(cmd.Context(), roots); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func watchRoots(ctx context.Context, roots []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := newHost(roots, nil)
	ext := extension.Activate(ctx, h, logger)

	w := watch.New(h.Store(), roots, h.Publish, logger)

	if !jsonOutput {
		fmt.Printf("%s\n", tipMsgStyle.Render("Watching "+roots[0]+" (press Ctrl+C to stop)"))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		ext.Dispose()
		return nil
	})
	return g.Wait()
}
