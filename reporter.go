package stylecast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter formats check issues in golangci-lint style.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter with the given configuration.
func NewReporter(w io.Writer, config CheckConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config CheckConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool { return r.useColors }

// PrintIssues outputs issues, sorted by position.
func (r *Reporter) PrintIssues(issues []Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (linter).
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are preserved so the caret lines up in terminals.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result CheckResult) {
	fmt.Fprintln(r.w, "")

	total := len(result.Issues)
	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(total, "issue", "issues"))
	}

	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "%s truncated by output limits\n",
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}

	fmt.Fprintf(r.w, "checked %s in %s\n",
		pluralizeCount(result.RulesChecked, "rule", "rules"),
		pluralizeCount(result.FilesScanned, "file", "files"))

	if total == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "stylesheets are clean", r.useColors))
	}
}

// PrintStatistics outputs the detailed scan statistics block.
func (r *Reporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Check Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------------")
	fmt.Fprintf(r.w, "Files Scanned:  %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:  %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Rules Checked:  %d\n", result.RulesChecked)
	fmt.Fprintf(r.w, "Errors:         %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:       %d\n", result.WarningCount)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
