// Package qss tokenizes widget stylesheet text of the form
//
//	<base>[.<class>][:<state>] { <property>: <value>; ... }
//
// into raw rule records with source positions. It performs no semantic
// validation: unknown states, properties and malformed values pass
// through for the caller to reject with typed errors.
package qss

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Decl is one raw property declaration inside a rule block.
type Decl struct {
	Name  string
	Value string
	Line  int
	Col   int
}

// Record is one raw rule: the decomposed selector, its declarations and
// the selector's source position. Malformed carries a description when
// the selector had surplus components the grammar does not allow.
type Record struct {
	Base      string
	Class     string
	State     string
	Decls     []Decl
	Line      int
	Col       int
	Malformed string
}

// Selector reconstructs the textual selector form.
func (r Record) Selector() string {
	var b strings.Builder
	b.WriteString(r.Base)
	if r.Class != "" {
		b.WriteByte('.')
		b.WriteString(r.Class)
	}
	if r.State != "" {
		b.WriteByte(':')
		b.WriteString(r.State)
	}
	return b.String()
}

// ParseFile reads and tokenizes a single stylesheet file.
func ParseFile(path string) ([]Record, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseString(string(content)), nil
}

// ParseString tokenizes stylesheet content. Tokens outside rule blocks
// that do not start a selector (stray punctuation, at-rules) are
// skipped; structure inside a block always terminates at the matching
// closing brace.
func ParseString(content string) []Record {
	input := parse.NewInputString(content)
	lexer := css.NewLexer(input)

	var records []Record
	for {
		offset := input.Offset()
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just stop
			break
		}

		// A selector starts with the base-type ident
		if tt == css.IdentToken {
			rec := parseRule(lexer, input, string(text), offset)
			if rec != nil {
				records = append(records, *rec)
			}
		}
	}

	return records
}

// parseRule consumes one selector and its declaration block. Returns
// nil when no block followed the selector.
func parseRule(lexer *css.Lexer, input *parse.Input, base string, offset int) *Record {
	line, col, _ := parse.Position(bytes.NewReader(input.Bytes()), offset)
	rec := &Record{Base: base, Line: line, Col: col}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return nil
		}

		switch {
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			tt2, className := lexer.Next()
			if tt2 != css.IdentToken {
				rec.Malformed = "expected class name after '.'"
				continue
			}
			if rec.Class != "" {
				rec.Malformed = fmt.Sprintf("surplus class %q (one class per selector)", string(className))
				continue
			}
			rec.Class = string(className)

		case tt == css.ColonToken:
			tt2, stateName := lexer.Next()
			if tt2 != css.IdentToken {
				rec.Malformed = "expected state name after ':'"
				continue
			}
			if rec.State != "" {
				rec.Malformed = fmt.Sprintf("surplus state %q (one state per selector)", string(stateName))
				continue
			}
			rec.State = string(stateName)

		case tt == css.LeftBraceToken:
			rec.Decls = extractDeclarations(lexer, input)
			return rec

		case tt == css.WhitespaceToken || tt == css.CommentToken:
			// between selector and block

		default:
			rec.Malformed = fmt.Sprintf("unexpected %q in selector", string(text))
		}
	}
}

// extractDeclarations reads property: value pairs until the closing
// brace, tracking the position of each property name.
func extractDeclarations(lexer *css.Lexer, input *parse.Input) []Decl {
	var decls []Decl

	var current Decl
	var value []string

	flush := func() {
		if current.Name != "" && len(value) > 0 {
			current.Value = strings.TrimSpace(strings.Join(value, ""))
			decls = append(decls, current)
		}
		current = Decl{}
		value = nil
	}

	for {
		offset := input.Offset()
		tt, text := lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			return decls
		}

		switch {
		case tt == css.IdentToken && current.Name == "":
			current.Name = string(text)
			current.Line, current.Col, _ = parse.Position(bytes.NewReader(input.Bytes()), offset)
		case tt == css.ColonToken && current.Name != "" && value == nil:
			// separator between property and value; mark value started
			value = []string{}
		case tt == css.SemicolonToken:
			flush()
		case tt == css.CommentToken:
			// ignore
		case current.Name != "" && value != nil:
			value = append(value, string(text))
		}
	}
}
