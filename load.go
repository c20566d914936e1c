package stylecast

import (
	"fmt"

	"github.com/okrent/stylecast/internal/qss"
)

// LoadString parses stylesheet text and builds a store from it. The
// first bad selector, bad property or duplicate selector aborts with
// the offending rule's position in the error.
func LoadString(content string) (*Store, error) {
	return buildStore(qss.ParseString(content), "")
}

// LoadFile parses a single stylesheet file into a store.
func LoadFile(path string) (*Store, error) {
	records, err := qss.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return buildStore(records, path)
}

// LoadFiles expands glob patterns (doublestar syntax, gitignored files
// skipped) and merges every matching stylesheet into one store. The
// duplicate-selector invariant holds across files.
func LoadFiles(patterns ...string) (*Store, error) {
	files, _, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no stylesheet files match %v", patterns)
	}

	store, err := NewStore()
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		records, err := qss.ParseFile(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if err := insertRecords(store, records, file); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// buildStore converts raw records into validated rules and indexes them.
func buildStore(records []qss.Record, name string) (*Store, error) {
	store, err := NewStore()
	if err != nil {
		return nil, err
	}
	if err := insertRecords(store, records, name); err != nil {
		return nil, err
	}
	return store, nil
}

func insertRecords(store *Store, records []qss.Record, name string) error {
	for _, rec := range records {
		rule, err := ruleFromRecord(rec)
		if err != nil {
			return positionErr(name, rec.Line, rec.Col, err)
		}
		if err := store.Insert(rule); err != nil {
			return positionErr(name, rec.Line, rec.Col, err)
		}
	}
	return nil
}

// ruleFromRecord validates one raw record into a typed rule.
func ruleFromRecord(rec qss.Record) (Rule, error) {
	if rec.Malformed != "" {
		return Rule{}, fmt.Errorf("selector %q: %s", rec.Selector(), rec.Malformed)
	}

	sel := Selector{Base: rec.Base, Class: rec.Class, State: State(rec.State)}
	raw := make(map[string]string, len(rec.Decls))
	for _, d := range rec.Decls {
		raw[d.Name] = d.Value
	}
	return NewRule(sel, raw)
}

func positionErr(name string, line, col int, err error) error {
	if name == "" {
		return fmt.Errorf("line %d:%d: %w", line, col, err)
	}
	return fmt.Errorf("%s:%d:%d: %w", name, line, col, err)
}
