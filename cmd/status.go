package cmd

import (
	"fmt"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
	"frameworkicons/pkg/statusbar"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [PROJECT_PATH]",
	Short: "Show the framework of the active icon theme",
	Long: `Prints the status bar entry for the project: the framework inferred from
the active icon theme. Settings are only read.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStatus,
}

type statusOutput struct {
	Framework       string `json:"framework"`
	Theme           string `json:"theme"`
	Text            string `json:"text"`
	Enabled         bool   `json:"enabled"`
	DetectFramework bool   `json:"detect_framework"`
	ManualFramework string `json:"manual_framework"`
}

func runStatus(cmd *cobra.Command, args []string) {
	projectPath := projectPathOrExit(args)

	h := newHost([]string{projectPath}, nil)
	cfg := h.Configuration()
	indicator := statusbar.New(h.CreateStatusItem(), cfg, h.UI(), nil, logger)
	indicator.Refresh(cmd.Context())

	out := statusOutput{
		Framework:       string(indicator.Current()),
		Theme:           host.GetString(cfg, config.KeyIconTheme, ""),
		Text:            statusbar.Text(indicator.Current()),
		Enabled:         host.GetBool(cfg, config.KeyEnabled, config.DefaultEnabled),
		DetectFramework: host.GetBool(cfg, config.KeyDetectFramework, config.DefaultDetectFramework),
		ManualFramework: host.GetString(cfg, config.KeyManualFramework, config.DefaultManualFramework),
	}

	if jsonOutput {
		printJSON(out)
		return
	}

	mode := "detect"
	if !out.DetectFramework {
		mode = "manual (" + out.ManualFramework + ")"
	}
	if !out.Enabled {
		mode = "disabled"
	}
	theme := out.Theme
	if theme == "" {
		theme = "(none)"
	}
	fmt.Printf("%s\n", tipMsgStyle.Render(fmt.Sprintf("Icon theme: %s", theme)))
	fmt.Printf("%s\n", tipMsgStyle.Render(fmt.Sprintf("Mode: %s", mode)))
	if out.Framework == string(framework.Default) && out.Theme != "" && out.Theme != framework.DefaultThemeID {
		fmt.Printf("%s\n", tipMsgStyle.Render("The active theme does not belong to a known framework."))
	}
}
