package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okrent/stylecast"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Check widget stylesheets for rule defects",
	Long: `Validate stylesheet files against the rule grammar and property set.
Errors are defects a store would reject (bad selectors, unknown
properties, malformed values, duplicate selectors); warnings are
rule-set smells that still load.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", []string{"**/*.qss"}, "Stylesheet glob patterns to check")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to report (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to report (0=unlimited)")
	f.Bool("print-lines", true, "Show stylesheet lines with issues")
	f.Bool("print-linter-name", true, "Show (stylecheck) suffix on issues")
}

// runCheck is shared between `stylecast check` and the bare `stylecast`
// invocation.
func runCheck(patterns []string) error {
	config := buildCheckConfig(patterns)

	result, err := stylecast.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := stylecast.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := stylecast.WriteOutput(os.Stdout, result, format, config); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if config.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
