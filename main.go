package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clausecraft/clausecraft/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clausecraft",
		Short: "AI-powered lease clause analysis",
		Long: `clausecraft uses AI to analyze lease agreements: multi-dimensional risk
scoring, fixed 3-round clause negotiation, and PASS/WARN/FAIL clause
validation with deterministic verdict rules.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewScoreCmd(),
		cmd.NewNegotiateCmd(),
		cmd.NewValidateCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("clausecraft version %s\n", version)
		},
	}
}
