package cmd

import (
	"fmt"
	"os"

	"frameworkicons/pkg/icons"

	"github.com/spf13/cobra"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold DIR",
	Short: "Create sample project folders for previewing the icons",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := icons.Scaffold(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !jsonOutput {
			fmt.Printf("%s\n", endingMsgStyle.Render("✅ Sample folders created in "+args[0]))
		}
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify DIR",
	Short: "Check that every icon directory holds the required icons",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reportProblems(icons.VerifyAssets(args[0]), "All required icons are present")
	},
}
