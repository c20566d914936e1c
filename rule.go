package stylecast

import (
	"fmt"
	"sort"
	"strings"
)

// Rule binds a selector to a validated property mapping. Rules are
// created once during store construction and never mutated afterward.
type Rule struct {
	selector Selector
	props    map[Property]Value
}

// NewRule validates every property of raw and returns the rule, or an
// *InvalidPropertyError for the first unknown name or malformed value.
// Validation is all-or-nothing: a rule with any bad property is never
// partially constructed.
func NewRule(sel Selector, raw map[string]string) (Rule, error) {
	if err := sel.Validate(); err != nil {
		return Rule{}, err
	}

	props := make(map[Property]Value, len(raw))
	for name, rawVal := range raw {
		if !KnownProperty(name) {
			return Rule{}, &InvalidPropertyError{Property: name, Value: rawVal, Reason: "unknown property"}
		}
		val, err := normalizeValue(Property(name), rawVal)
		if err != nil {
			return Rule{}, err
		}
		props[Property(name)] = val
	}

	return Rule{selector: sel, props: props}, nil
}

// MustRule is NewRule that panics on error. For fixtures and tests.
func MustRule(sel Selector, raw map[string]string) Rule {
	r, err := NewRule(sel, raw)
	if err != nil {
		panic(err)
	}
	return r
}

// Selector returns the rule's match key.
func (r Rule) Selector() Selector { return r.selector }

// Get returns the value the rule defines for p.
func (r Rule) Get(p Property) (Value, bool) {
	v, ok := r.props[p]
	return v, ok
}

// Len returns the number of properties the rule defines.
func (r Rule) Len() int { return len(r.props) }

// Properties returns the rule's property names, sorted.
func (r Rule) Properties() []Property {
	props := make([]Property, 0, len(r.props))
	for p := range r.props {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	return props
}

// String renders the rule in stylesheet form. Used for debugging and
// check output.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.selector.String())
	b.WriteString(" { ")
	for _, p := range r.Properties() {
		fmt.Fprintf(&b, "%s: %s; ", p, r.props[p].String())
	}
	b.WriteString("}")
	return b.String()
}
