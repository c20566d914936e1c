package stylecast

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/okrent/stylecast/internal/qss"
)

// CheckConfig holds stylesheet checking configuration
type CheckConfig struct {
	Patterns []string // Stylesheet glob patterns (doublestar syntax)
	Strict   bool     // Exit 1 on any issue (CI mode)

	MaxIssues        int  // Maximum issues to report (0 = unlimited)
	MaxSameIssues    int  // Maximum repeats of one message (0 = unlimited)
	PrintIssuedLines bool // Show stylesheet lines with issues
	PrintLinterName  bool // Show (stylecheck) suffix
	UseColors        bool // Force color output
}

// CheckResult contains stylesheet analysis results
type CheckResult struct {
	FilesScanned int
	FilesSkipped int
	RulesChecked int

	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int
}

// checkedSheet is one parsed stylesheet queued for analysis.
type checkedSheet struct {
	name    string
	lines   []string
	records []qss.Record
}

// Check validates every stylesheet matching the configured patterns.
// Errors are violations a store would reject at construction time
// (bad selectors, unknown properties, malformed values, duplicate
// selectors); warnings are rule-set smells that still load but resolve
// to narrower styles than likely intended. Failure is isolated per
// rule: one bad rule never hides findings in unrelated rules.
func Check(config CheckConfig) (*CheckResult, error) {
	files, stats, err := expandGlobPatterns(config.Patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding patterns: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no stylesheet files match %v", config.Patterns)
	}

	sheets := make([]checkedSheet, 0, len(files))
	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		sheets = append(sheets, checkedSheet{
			name:    file,
			lines:   strings.Split(string(content), "\n"),
			records: qss.ParseString(string(content)),
		})
	}

	result := analyzeSheets(sheets)
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}
	return result, nil
}

// CheckString validates a single in-memory stylesheet. Used by tests
// and by hosts that keep stylesheets embedded.
func CheckString(content, name string) *CheckResult {
	sheet := checkedSheet{
		name:    name,
		lines:   strings.Split(content, "\n"),
		records: qss.ParseString(content),
	}
	return analyzeSheets([]checkedSheet{sheet})
}

// analyzeSheets runs every checker category across the combined rule
// set. Duplicate detection spans files because LoadFiles merges all
// matched sheets into one store.
func analyzeSheets(sheets []checkedSheet) *CheckResult {
	result := &CheckResult{}
	var issues []Issue

	seen := make(map[Selector]bool)     // selectors already declared
	baseRules := make(map[string]bool)  // base types with a base rule
	classRules := make(map[string]bool) // "base.class" keys with a class rule

	issue := func(sheet checkedSheet, line, col int, severity, format string, args ...interface{}) {
		iss := Issue{
			FromLinter: "stylecheck",
			Text:       fmt.Sprintf(format, args...),
			Severity:   severity,
			Pos:        IssuePos{Filename: sheet.name, Line: line, Column: col},
		}
		if line > 0 && line <= len(sheet.lines) {
			iss.SourceLines = []string{sheet.lines[line-1]}
		}
		issues = append(issues, iss)
	}

	// Pass 1: per-rule validation and selector inventory
	for _, sheet := range sheets {
		for _, rec := range sheet.records {
			result.RulesChecked++

			if rec.Malformed != "" {
				issue(sheet, rec.Line, rec.Col, SeverityError, IssueBadSelector, rec.Selector(), rec.Malformed)
				continue
			}

			sel := Selector{Base: rec.Base, Class: rec.Class, State: State(rec.State)}
			if err := sel.Validate(); err != nil {
				issue(sheet, rec.Line, rec.Col, SeverityError, IssueBadSelector, rec.Selector(), err.Error())
				continue
			}

			if seen[sel] {
				issue(sheet, rec.Line, rec.Col, SeverityError, IssueDuplicateRule, sel.String())
			}
			seen[sel] = true
			if sel.Class == "" && sel.State == StateNone {
				baseRules[sel.Base] = true
			}
			if sel.Class != "" && sel.State == StateNone {
				classRules[sel.Base+"."+sel.Class] = true
			}

			if len(rec.Decls) == 0 {
				issue(sheet, rec.Line, rec.Col, SeverityWarning, IssueEmptyRule, sel.String())
			}

			declared := make(map[string]bool, len(rec.Decls))
			for _, d := range rec.Decls {
				if declared[d.Name] {
					issue(sheet, d.Line, d.Col, SeverityWarning, IssueDuplicateDecl, d.Name, sel.String())
				}
				declared[d.Name] = true

				if !KnownProperty(d.Name) {
					issue(sheet, d.Line, d.Col, SeverityError, IssueUnknownProperty, d.Name)
					continue
				}
				if _, err := normalizeValue(Property(d.Name), d.Value); err != nil {
					reason := err.Error()
					var ipe *InvalidPropertyError
					if errors.As(err, &ipe) {
						reason = ipe.Reason
					}
					issue(sheet, d.Line, d.Col, SeverityError, IssueInvalidValue, d.Value, d.Name, reason)
				}
			}
		}
	}

	// Pass 2: cross-rule structure
	warnedBase := make(map[string]bool)
	for _, sheet := range sheets {
		for _, rec := range sheet.records {
			if rec.Malformed != "" {
				continue
			}
			if rec.Class != "" && rec.State != "" {
				key := rec.Base + "." + rec.Class
				if !classRules[key] {
					issue(sheet, rec.Line, rec.Col, SeverityWarning, IssueOrphanStateRule,
						rec.Selector(), rec.Base+"."+rec.Class)
				}
			}
			if rec.Class != "" && !baseRules[rec.Base] && !warnedBase[rec.Base] {
				warnedBase[rec.Base] = true
				issue(sheet, rec.Line, rec.Col, SeverityWarning, IssueMissingBaseRule, rec.Base)
			}
		}
	}

	sortIssues(issues)
	result.Issues = issues
	for _, iss := range issues {
		switch iss.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result
}

// sortIssues orders issues by file, then line, then column.
func sortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
