package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"privacyhq/meridian/pkg/manifest"
	"privacyhq/meridian/pkg/taxonomy"
	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate [path...]",
	Short: "Validate taxonomy manifests",
	Long: `Parse taxonomy manifest files and validate every resource in them.

Each path may be a single manifest file or a directory that is searched
recursively for .yaml/.yml manifests. All files are merged into a single
taxonomy before validation, so resources may be split across files.

Examples:
  # Validate every manifest under the current directory
  meridian validate

  # Validate a specific file
  meridian validate taxonomy.yaml

  # Machine-readable report
  meridian validate ./manifests --format json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// validationReport is the JSON shape of a validation run.
type validationReport struct {
	Valid     bool               `json:"valid"`
	Manifests []string           `json:"manifests"`
	Resources map[string]int     `json:"resources,omitempty"`
	Errors    []*taxErrors.Error `json:"errors,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var manifests []string
	for _, path := range paths {
		found, err := manifest.Discover(path)
		if err != nil {
			return err
		}
		manifests = append(manifests, found...)
	}
	if len(manifests) == 0 {
		return fmt.Errorf("no manifest files found under %v", paths)
	}

	t, err := taxonomy.ParseAndValidateMulti(manifests)

	report := validationReport{
		Valid:     err == nil,
		Manifests: manifests,
	}
	if t != nil {
		report.Resources = t.KindCounts()
	}
	if errList, ok := err.(*taxErrors.ErrorList); ok {
		report.Errors = errList.Errors
	} else if taxErr, ok := err.(*taxErrors.Error); ok {
		report.Errors = []*taxErrors.Error{taxErr}
	} else if err != nil {
		return err
	}

	switch validateFlags.format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	case "text":
		printTextReport(&report)
	default:
		return fmt.Errorf("unsupported format: %s", validateFlags.format)
	}

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func printTextReport(report *validationReport) {
	fmt.Printf("Validated %d manifest file(s)\n", len(report.Manifests))

	if len(report.Resources) > 0 {
		kinds := make([]string, 0, len(report.Resources))
		for kind := range report.Resources {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		fmt.Println()
		for _, kind := range kinds {
			if report.Resources[kind] > 0 {
				fmt.Printf("  %-15s %d\n", kind, report.Resources[kind])
			}
		}
		fmt.Println()
	}

	if report.Valid {
		fmt.Println("Taxonomy is valid.")
		return
	}

	fmt.Printf("Found %d validation error(s):\n", len(report.Errors))
	for i, e := range report.Errors {
		fmt.Printf("  %d. %s\n", i+1, e.Error())
	}
}
