package stylecast

import "fmt"

// DuplicateSelectorError reports an insert whose selector is already
// present in the store. Duplicate selectors are a configuration defect;
// the engine never silently overwrites a rule.
type DuplicateSelectorError struct {
	Selector Selector
}

func (e *DuplicateSelectorError) Error() string {
	return fmt.Sprintf("duplicate selector %q", e.Selector.String())
}

// NoBaseRuleError reports a resolution for a base type that has no
// base-type rule registered. The partial result returned alongside it is
// still usable; the host decides whether to fall back to its own
// defaults or skip rendering the widget.
type NoBaseRuleError struct {
	BaseType string
}

func (e *NoBaseRuleError) Error() string {
	return fmt.Sprintf("no base rule registered for type %q", e.BaseType)
}

// InvalidPropertyError reports an unknown property name or a malformed
// value encountered while building a rule. The offending rule is
// rejected whole; no property is silently dropped.
type InvalidPropertyError struct {
	Property string
	Value    string
	Reason   string
}

func (e *InvalidPropertyError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid property %q: %s", e.Property, e.Reason)
	}
	return fmt.Sprintf("invalid property %q value %q: %s", e.Property, e.Value, e.Reason)
}
