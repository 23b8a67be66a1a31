package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"frameworkicons/cmd/ui/detection"
	"frameworkicons/cmd/ui/spinner"
	"frameworkicons/pkg/config"
	"frameworkicons/pkg/detector"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const Version = "1.0.0"

var (
	jsonOutput       bool
	skipInteractive  bool
	userSettingsPath string
	logLevel         string

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	errorMsgStyle  = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("196")).Bold(true)
)

const Logo = `
┌─┐┬─┐┌─┐┌┬┐┌─┐┬ ┬┌─┐┬─┐┬┌─  ┬┌─┐┌─┐┌┐┌┌─┐
├┤ ├┬┘├─┤│││├┤ ││││ │├┬┘├┴┐  ││  │ ││││└─┐
└  ┴└─┴ ┴┴ ┴└─┘└┴┘└─┘┴└─┴ ┴  ┴└─┘└─┘┘└┘└─┘
`

var rootCmd = &cobra.Command{
	Use:   "framework-icons [PROJECT_PATH]",
	Short: "Switch the editor icon theme to match a project's framework",
	Long: Logo + `
Framework Icons detects whether a project is built with React, Angular or Vue and
activates the matching icon theme in the project's editor settings.

Detection looks for angular.json, then vue.config.js, then the dependencies
declared in package.json. Projects without any marker use the default theme.`,
	Version:           Version,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setupLogging,
	Run:               runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	projectPath := projectPathOrExit(args)

	if jsonOutput || skipInteractive || !isTerminal() {
		result := detector.DetectRoot(projectPath, logger)
		printJSON(result)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	var result detector.Result
	spinner.Run("Detecting framework...", func() {
		result = detector.DetectRoot(projectPath, logger)
	})

	apply, err := detection.ShowDetectionResults(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error showing detection results: %v\n", err)
		os.Exit(1)
	}

	if !apply {
		fmt.Println("Leaving the icon theme unchanged.")
		return
	}

	themeID, err := applyFramework(cmd.Context(), projectPath, result.Framework)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error applying icon theme: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", endingMsgStyle.Render("✅ Icon theme set to "+themeID))
	fmt.Printf("\n%s\n", tipMsgStyle.Render("Tip: Use --json flag for CI/automation mode"))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

func interactive() bool {
	return !jsonOutput && !skipInteractive && isTerminal()
}

func init() {
	rootCmd.SetVersionTemplate("framework-icons version {{.Version}}\n")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(verifyCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
	rootCmd.PersistentFlags().StringVar(&userSettingsPath, "user-settings", "", "User settings file (default: $"+config.UserSettingsEnv+" or the editor's user settings)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
}
