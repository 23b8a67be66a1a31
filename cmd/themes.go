package cmd

import (
	"fmt"
	"os"

	"frameworkicons/pkg/icons"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Generate and check the icon theme documents",
}

var themesGenerateCmd = &cobra.Command{
	Use:   "generate DIR",
	Short: "Write the theme documents and their SVG icons into DIR",
	Args:  cobra.ExactArgs(1),
	Run:   runThemesGenerate,
}

var themesCheckCmd = &cobra.Command{
	Use:   "check DIR",
	Short: "Validate the theme documents in DIR",
	Args:  cobra.ExactArgs(1),
	Run:   runThemesCheck,
}

type generateOutput struct {
	Themes []string `json:"themes"`
	Icons  int      `json:"icons"`
}

func runThemesGenerate(cmd *cobra.Command, args []string) {
	dir := args[0]

	written, err := icons.WriteThemes(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	count, err := icons.GenerateSVGs(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(generateOutput{Themes: written, Icons: count})
		return
	}
	for _, path := range written {
		fmt.Printf("%s\n", tipMsgStyle.Render("Wrote "+path))
	}
	fmt.Printf("%s\n", endingMsgStyle.Render(fmt.Sprintf("✅ Generated %d theme files and %d icons", len(written), count)))
}

func runThemesCheck(cmd *cobra.Command, args []string) {
	reportProblems(icons.CheckThemes(args[0]), "All theme files are valid")
}

// reportProblems prints problems and exits non-zero when there are any.
func reportProblems(problems []icons.Problem, okMessage string) {
	if jsonOutput {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			msgs = append(msgs, p.Error())
		}
		printJSON(map[string]any{"ok": len(problems) == 0, "problems": msgs})
	} else {
		for _, p := range problems {
			fmt.Printf("%s\n", errorMsgStyle.Render("✗ "+p.Error()))
		}
		if len(problems) == 0 {
			fmt.Printf("%s\n", endingMsgStyle.Render("✅ "+okMessage))
		}
	}

	if len(problems) > 0 {
		os.Exit(1)
	}
}

func init() {
	themesCmd.AddCommand(themesGenerateCmd)
	themesCmd.AddCommand(themesCheckCmd)
}
