package qss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Record
	}{
		{
			name:    "base rule",
			content: "button { border-radius: 4px; }",
			want: []Record{{
				Base:  "button",
				Decls: []Decl{{Name: "border-radius", Value: "4px", Line: 1, Col: 10}},
				Line:  1, Col: 1,
			}},
		},
		{
			name:    "class and state",
			content: "button.start-button:hover { background-color: #42A5F5; }",
			want: []Record{{
				Base: "button", Class: "start-button", State: "hover",
				Decls: []Decl{{Name: "background-color", Value: "#42A5F5", Line: 1, Col: 29}},
				Line:  1, Col: 1,
			}},
		},
		{
			name: "multi-token values",
			content: `button {
	font-family: Arial, Helvetica, sans-serif;
	padding: 6px 12px;
	border: 1px solid #CCCCCC;
}`,
			want: []Record{{
				Base: "button",
				Decls: []Decl{
					{Name: "font-family", Value: "Arial, Helvetica, sans-serif", Line: 2, Col: 2},
					{Name: "padding", Value: "6px 12px", Line: 3, Col: 2},
					{Name: "border", Value: "1px solid #CCCCCC", Line: 4, Col: 2},
				},
				Line: 1, Col: 1,
			}},
		},
		{
			name:    "comments ignored",
			content: "/* theme */\nbutton { /* base */ opacity: 0.8; }",
			want: []Record{{
				Base:  "button",
				Decls: []Decl{{Name: "opacity", Value: "0.8", Line: 2, Col: 21}},
				Line:  2, Col: 1,
			}},
		},
		{
			name:    "missing final semicolon",
			content: "button { opacity: 0.8 }",
			want: []Record{{
				Base:  "button",
				Decls: []Decl{{Name: "opacity", Value: "0.8", Line: 1, Col: 10}},
				Line:  1, Col: 1,
			}},
		},
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseString(tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringMalformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLike string
	}{
		{
			name:     "two classes",
			content:  "button.one.two { opacity: 1; }",
			wantLike: "surplus class",
		},
		{
			name:     "two states",
			content:  "button:hover:disabled { opacity: 1; }",
			wantLike: "surplus state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ParseString(tt.content)
			require.Len(t, records, 1)
			assert.Contains(t, records[0].Malformed, tt.wantLike)
		})
	}
}

func TestRecordSelector(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{name: "base", rec: Record{Base: "button"}, want: "button"},
		{name: "class", rec: Record{Base: "button", Class: "start-button"}, want: "button.start-button"},
		{
			name: "full",
			rec:  Record{Base: "button", Class: "start-button", State: "hover"},
			want: "button.start-button:hover",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Selector())
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.qss")
	require.NoError(t, os.WriteFile(path, []byte("button { opacity: 1; }"), 0o644))

	records, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "button", records[0].Base)

	_, err = ParseFile(filepath.Join(dir, "missing.qss"))
	require.Error(t, err)
}
