package cmd

import (
	"fmt"
	"os"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/extension"
	"frameworkicons/pkg/host"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Detect the framework now and apply its icon theme",
	Long: `Activates against the project and runs the detect command: the settings
decide whether the detected or the manually chosen framework is applied.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

type detectOutput struct {
	Framework string `json:"framework"`
	Theme     string `json:"theme"`
	Status    string `json:"status"`
}

func runDetect(cmd *cobra.Command, args []string) {
	projectPath := projectPathOrExit(args)
	ctx := cmd.Context()

	h := newHost([]string{projectPath}, nil)
	ext := extension.Activate(ctx, h, logger)
	defer ext.Dispose()

	if err := h.Commands().Execute(ctx, extension.DetectCommand); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		label := ext.Indicator().Current()
		printJSON(detectOutput{
			Framework: string(label),
			Theme:     host.GetString(h.Configuration(), config.KeyIconTheme, ""),
			Status:    h.StatusItems()[0].Text(),
		})
	}
}
