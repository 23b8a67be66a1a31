package cmd

import (
	"fmt"
	"os"

	"frameworkicons/pkg/extension"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host/local"

	"github.com/spf13/cobra"
)

var cycleTo string

var cycleCmd = &cobra.Command{
	Use:   "cycle [PROJECT_PATH]",
	Short: "Pick a framework and pin its icon theme",
	Long: `Runs the status bar cycle action: choose a framework from a list, turn
automatic detection off and store the choice in the user settings.

Use --to to choose without the interactive list.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCycle,
}

func runCycle(cmd *cobra.Command, args []string) {
	projectPath := projectPathOrExit(args)
	ctx := cmd.Context()

	var ext *extension.Extension
	var pick local.PickFunc
	if cycleTo != "" {
		label, err := framework.ParseLabel(cycleTo)
		if err != nil || framework.CycleIndex(label) < 0 {
			fmt.Fprintf(os.Stderr, "Error: --to must be one of %v\n", framework.CycleOrder)
			os.Exit(1)
		}
		pick = valuePicker(string(label))
	} else {
		pick = interactivePicker(func() string {
			return string(ext.Indicator().Current())
		})
		if pick == nil {
			fmt.Fprintf(os.Stderr, "Error: no terminal attached, use --to to choose a framework\n")
			os.Exit(1)
		}
	}

	h := newHost([]string{projectPath}, pick)
	ext = extension.Activate(ctx, h, logger)
	defer ext.Dispose()

	if err := h.Commands().Execute(ctx, extension.CycleCommand); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(detectOutput{
			Framework: string(ext.Indicator().Current()),
			Theme:     framework.ThemeID(ext.Indicator().Current()),
			Status:    h.StatusItems()[0].Text(),
		})
	}
}

func init() {
	cycleCmd.Flags().StringVar(&cycleTo, "to", "", "Framework to switch to (react, angular, vue or default)")
}
