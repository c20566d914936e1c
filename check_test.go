package stylecast

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTexts(issues []Issue) []string {
	texts := make([]string, len(issues))
	for i, iss := range issues {
		texts[i] = iss.Text
	}
	return texts
}

func TestCheckStringCategories(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantSeverity string
		wantText     string
	}{
		{
			name:         "unknown property",
			content:      "button { box-shadow: 1px; }",
			wantSeverity: SeverityError,
			wantText:     `unknown property "box-shadow"`,
		},
		{
			name:         "malformed value",
			content:      "button { opacity: 2; }",
			wantSeverity: SeverityError,
			wantText:     `invalid value "2" for property "opacity"`,
		},
		{
			name:         "duplicate selector",
			content:      "button { opacity: 1; }\nbutton { opacity: 0; }",
			wantSeverity: SeverityError,
			wantText:     `duplicate selector "button"`,
		},
		{
			name:         "bad selector state",
			content:      "button.start-button:focus { opacity: 1; }",
			wantSeverity: SeverityError,
			wantText:     `bad selector "button.start-button:focus"`,
		},
		{
			name:         "surplus class",
			content:      "button.one.two { opacity: 1; }",
			wantSeverity: SeverityError,
			wantText:     "surplus class",
		},
		{
			name:         "empty rule",
			content:      "button { }",
			wantSeverity: SeverityWarning,
			wantText:     `rule "button" declares no properties`,
		},
		{
			name:         "duplicate declaration",
			content:      "button { opacity: 1; opacity: 0.5; }",
			wantSeverity: SeverityWarning,
			wantText:     `property "opacity" declared twice`,
		},
		{
			name:         "orphan state rule",
			content:      "button { opacity: 1; }\nbutton.ghost:hover { opacity: 0.5; }",
			wantSeverity: SeverityWarning,
			wantText:     `state rule "button.ghost:hover" has no class rule`,
		},
		{
			name:         "class without base rule",
			content:      "slider.volume { min-width: 120px; }",
			wantSeverity: SeverityWarning,
			wantText:     `no base rule for type "slider"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckString(tt.content, "test.qss")
			require.NotEmpty(t, result.Issues, "expected an issue")

			found := false
			for _, iss := range result.Issues {
				if iss.Severity == tt.wantSeverity && len(iss.Text) >= len(tt.wantText) &&
					iss.Text[:len(tt.wantText)] == tt.wantText {
					found = true
					assert.Equal(t, "stylecheck", iss.FromLinter)
					assert.Equal(t, "test.qss", iss.Pos.Filename)
					assert.Greater(t, iss.Pos.Line, 0)
				}
			}
			assert.True(t, found, "issue %q not found in %v", tt.wantText, issueTexts(result.Issues))
		})
	}
}

func TestCheckStringCleanFixture(t *testing.T) {
	content, err := os.ReadFile("testdata/annotator.qss")
	require.NoError(t, err)

	result := CheckString(string(content), "annotator.qss")
	assert.Empty(t, result.Issues, "fixture should be clean: %v", issueTexts(result.Issues))
	assert.Equal(t, 18, result.RulesChecked)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.WarningCount)
}

func TestCheckFailureIsolation(t *testing.T) {
	// One bad rule must not hide findings in unrelated rules.
	result := CheckString(`
button { opacity: loud; }
button.ghost { background-color: wrong; }
button.start-button { background-color: #2196F3; }
`, "mixed.qss")

	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 3, result.RulesChecked)
}

func TestCheckIssuePositions(t *testing.T) {
	result := CheckString("button {\n    opacity: 2;\n}\n", "pos.qss")
	require.Len(t, result.Issues, 1)

	iss := result.Issues[0]
	assert.Equal(t, 2, iss.Pos.Line)
	assert.Equal(t, 5, iss.Pos.Column)
	require.Len(t, iss.SourceLines, 1)
	assert.Equal(t, "    opacity: 2;", iss.SourceLines[0])
}

func TestCheckGlobs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "a.qss"),
		[]byte("button { opacity: 1; }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "b.qss"),
		[]byte("button { opacity: 0; }"), 0o644))

	result, err := Check(CheckConfig{Patterns: []string{filepath.Join(dir, "**", "*.qss")}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesScanned)
	// Cross-file duplicate selector is an error.
	assert.Equal(t, 1, result.ErrorCount)

	_, err = Check(CheckConfig{Patterns: []string{filepath.Join(dir, "*.none")}})
	require.Error(t, err)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"},
		{Text: "b"}, {Text: "c"},
	}

	limited, truncated := limitIssues(issues, CheckConfig{MaxSameIssues: 1})
	assert.Len(t, limited, 3)
	assert.Equal(t, 2, truncated)

	limited, truncated = limitIssues(issues, CheckConfig{MaxIssues: 2})
	assert.Len(t, limited, 2)
	assert.Equal(t, 3, truncated)
}

func TestWriteJSONOutput(t *testing.T) {
	result := CheckString("button { opacity: 2; }", "bad.qss")

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, 1, out.Summary.Errors)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "bad.qss", out.Issues[0].File)
	assert.Equal(t, "stylecheck", out.Issues[0].Linter)
}
