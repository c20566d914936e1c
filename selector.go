package stylecast

import (
	"fmt"
	"strings"
)

// State is an interaction state a selector can target.
type State string

// States understood by the resolver. StateNone marks a selector with no
// state pseudo-tag.
const (
	StateNone     State = ""
	StateHover    State = "hover"
	StateDisabled State = "disabled"
)

// ParseState converts a pseudo-tag name to a State.
func ParseState(name string) (State, error) {
	switch State(name) {
	case StateHover:
		return StateHover, nil
	case StateDisabled:
		return StateDisabled, nil
	}
	return StateNone, fmt.Errorf("unknown state %q (want %q or %q)", name, StateHover, StateDisabled)
}

// Selector is the tagged compound match key of a rule: a base-type tag,
// an optional style class, and an optional state pseudo-tag. The zero
// Class/State fields mean "not present". Selector is a comparable value
// and is used directly as the store's index key.
type Selector struct {
	Base  string
	Class string
	State State
}

// String renders the selector in stylesheet form, e.g.
// "button.start-button:hover".
func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Base)
	if s.Class != "" {
		b.WriteByte('.')
		b.WriteString(s.Class)
	}
	if s.State != StateNone {
		b.WriteByte(':')
		b.WriteString(string(s.State))
	}
	return b.String()
}

// Validate checks structural constraints: the base tag is mandatory and
// the state must be one of the known pseudo-tags.
func (s Selector) Validate() error {
	if s.Base == "" {
		return fmt.Errorf("base type must not be empty")
	}
	if s.State != StateNone {
		if _, err := ParseState(string(s.State)); err != nil {
			return err
		}
	}
	return nil
}

// ParseSelector parses the textual form <base>[.<class>][:<state>].
func ParseSelector(text string) (Selector, error) {
	rest := strings.TrimSpace(text)
	if rest == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}

	var sel Selector
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		state, err := ParseState(rest[i+1:])
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", text, err)
		}
		sel.State = state
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		sel.Class = rest[i+1:]
		rest = rest[:i]
		if sel.Class == "" {
			return Selector{}, fmt.Errorf("selector %q: empty class name", text)
		}
	}
	sel.Base = rest

	if err := sel.Validate(); err != nil {
		return Selector{}, fmt.Errorf("selector %q: %w", text, err)
	}
	return sel, nil
}
