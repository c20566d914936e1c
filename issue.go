package stylecast

// Issue represents a single stylesheet violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "stylecheck"
	Text        string   `json:"Text"`        // "unknown property \"colour\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Stylesheet lines with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "themes/annotator.qss"
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue text templates matching checker categories
const (
	IssueBadSelector     = "bad selector %q: %s"
	IssueUnknownProperty = "unknown property %q"
	IssueInvalidValue    = "invalid value %q for property %q: %s"
	IssueDuplicateRule   = "duplicate selector %q redeclares an earlier rule"
	IssueEmptyRule       = "rule %q declares no properties"
	IssueDuplicateDecl   = "property %q declared twice in rule %q; the later value wins"
	IssueOrphanStateRule = "state rule %q has no class rule %q to extend"
	IssueMissingBaseRule = "no base rule for type %q; class rules alone resolve to a partial style"
)
