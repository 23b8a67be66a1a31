package cmd

import (
	"errors"
	"fmt"
	"os"

	"frameworkicons/pkg/framework"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply FRAMEWORK [PROJECT_PATH]",
	Short: "Activate the icon theme of a framework",
	Long: `Writes the icon theme of FRAMEWORK into the project's workspace settings.

FRAMEWORK is one of react, angular, vue, default or auto. With auto the
framework is detected from the project.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runApply,
}

type applyOutput struct {
	Framework string `json:"framework"`
	Theme     string `json:"theme"`
}

func runApply(cmd *cobra.Command, args []string) {
	label, err := framework.ParseLabel(args[0])
	if err != nil {
		if errors.Is(err, framework.ErrUnknownLabel) {
			fmt.Fprintf(os.Stderr, "Error: %v (expected react, angular, vue, default or auto)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	projectPath := projectPathOrExit(args[1:])

	themeID, err := applyFramework(cmd.Context(), projectPath, label)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error applying icon theme: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(applyOutput{Framework: string(framework.FromThemeID(themeID)), Theme: themeID})
		return
	}
	fmt.Printf("%s\n", endingMsgStyle.Render("✅ Icon theme set to "+themeID))
}
