package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagTimeZone string
	flagDebug    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the plaso CLI.
var rootCmd = &cobra.Command{
	Use:           "plaso",
	Short:         "Select forensic parsers and inspect evidence bytes",
	Long:          "plaso selects artifact parsers with a filter expression, runs them over evidence files, and renders hex dumps around extracted events.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the plaso CLI. It should be called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTimeZone, "timezone", "UTC", "timezone of the evidence source")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug output")
}
