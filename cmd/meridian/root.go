package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"privacyhq/meridian/pkg/telemetry/logging"
)

var (
	// Global flags
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "meridian",
	Short: "Meridian - privacy taxonomy validation engine",
	Long: `Meridian models a taxonomy of privacy and compliance resources and
enforces structural and referential integrity over it before the
taxonomy is consumed by downstream evaluation or export tooling.

It validates:
  - Hierarchical key integrity for categories, qualifiers, and uses
  - Recursively nested dataset fields and their declared data types
  - Cross-references between systems, data flows, and privacy declarations
  - Conditional field requirements (rights strategies, legitimate interest)
  - Third-country transfer codes against the ISO 3166-1 alpha-3 set`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		_, err := logging.Setup(logging.Config{
			Level:  level,
			Format: logFormat,
		})
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
}
