package stylecast

import (
	"fmt"
	"sort"
)

// StateSet is the set of interaction states active on a widget at
// resolution time. Disabled suppresses hover: a disabled widget never
// receives hover styling even if the host reports both flags.
type StateSet struct {
	Hover    bool
	Disabled bool
}

// Active returns the states to apply, in application order. Later
// entries would override earlier ones, but with hover suppression at
// most one state is ever active.
func (s StateSet) Active() []State {
	if s.Disabled {
		return []State{StateDisabled}
	}
	if s.Hover {
		return []State{StateHover}
	}
	return nil
}

// WidgetDescriptor identifies what to resolve: the widget's base type,
// its assigned style class (at most one, may be empty), and the current
// state flags. Descriptors are ephemeral per-call values.
type WidgetDescriptor struct {
	BaseType   string
	StyleClass string
	States     StateSet
}

// ResolvedStyle is the flattened property mapping a rendering host
// applies to a widget. It is immutable and owned solely by the caller.
type ResolvedStyle struct {
	props map[Property]Value
}

// Get returns the resolved value for p.
func (rs ResolvedStyle) Get(p Property) (Value, bool) {
	v, ok := rs.props[p]
	return v, ok
}

// Has reports whether p was set by any matching rule.
func (rs ResolvedStyle) Has(p Property) bool {
	_, ok := rs.props[p]
	return ok
}

// Len returns the number of resolved properties.
func (rs ResolvedStyle) Len() int { return len(rs.props) }

// Properties returns the resolved property names, sorted.
func (rs ResolvedStyle) Properties() []Property {
	props := make([]Property, 0, len(rs.props))
	for p := range rs.props {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	return props
}

// Opacity returns the resolved opacity, defaulting to fully opaque when
// no matching rule set one.
func (rs ResolvedStyle) Opacity() float64 {
	if v, ok := rs.props[PropOpacity]; ok {
		if f, ok := v.Number(); ok {
			return f
		}
	}
	return 1.0
}

// Resolver computes effective styles against a store. Resolution is a
// pure function of (store content, descriptor): no side effects, no
// I/O, fresh output per call.
type Resolver struct {
	store *Store
}

// NewResolver returns a resolver reading from store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve merges every matching layer into one effective property
// mapping. Layers, lowest precedence first:
//
//  1. base-type rule
//  2. base-type state rule (shared fallback for classes that omit one)
//  3. class rule
//  4. class state rule
//
// Each layer overrides only the properties it defines. Missing class or
// state layers contribute nothing and are not errors. A missing
// base-type rule yields *NoBaseRuleError alongside whatever the other
// layers produced.
func (r *Resolver) Resolve(d WidgetDescriptor) (ResolvedStyle, error) {
	if d.BaseType == "" {
		return ResolvedStyle{}, fmt.Errorf("descriptor base type must not be empty")
	}

	merged := make(map[Property]Value)
	apply := func(sel Selector) bool {
		rule, ok := r.store.Lookup(sel)
		if !ok {
			return false
		}
		for _, p := range rule.Properties() {
			v, _ := rule.Get(p)
			merged[p] = v
		}
		return true
	}

	states := d.States.Active()

	hasBase := apply(Selector{Base: d.BaseType})
	for _, st := range states {
		apply(Selector{Base: d.BaseType, State: st})
	}
	if d.StyleClass != "" {
		apply(Selector{Base: d.BaseType, Class: d.StyleClass})
		for _, st := range states {
			apply(Selector{Base: d.BaseType, Class: d.StyleClass, State: st})
		}
	}

	style := ResolvedStyle{props: merged}
	if !hasBase {
		return style, &NoBaseRuleError{BaseType: d.BaseType}
	}
	return style, nil
}
