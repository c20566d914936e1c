package stylecast

import "io"

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags.
// Following golangci-lint's UX the default is issues only: clean, fast,
// consistent everywhere.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}
	return OutputIssues
}

// WriteOutput writes the check result in the specified format.
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) error {
	reporter := NewReporter(w, config)

	switch format {
	case OutputIssues:
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		reporter.PrintStatistics(*result)

	case OutputFull:
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		return WriteJSON(w, result)
	}

	return nil
}
