package stylecast

import "sort"

// Store holds the rule set, indexed by selector for O(1) exact lookup.
// A store is populated once before use and treated as read-only
// afterward; concurrent readers need no locking. Partial matching and
// precedence live in the Resolver, not here.
type Store struct {
	rules map[Selector]Rule
}

// NewStore builds a store from rules in declaration order. The first
// duplicate selector aborts construction with *DuplicateSelectorError.
func NewStore(rules ...Rule) (*Store, error) {
	s := &Store{rules: make(map[Selector]Rule, len(rules))}
	for _, r := range rules {
		if err := s.Insert(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert adds a rule. Inserting a selector that is already present
// fails with *DuplicateSelectorError and leaves the store unchanged.
func (s *Store) Insert(r Rule) error {
	if _, exists := s.rules[r.selector]; exists {
		return &DuplicateSelectorError{Selector: r.selector}
	}
	s.rules[r.selector] = r
	return nil
}

// Lookup returns the rule with exactly the given selector shape.
func (s *Store) Lookup(sel Selector) (Rule, bool) {
	r, ok := s.rules[sel]
	return r, ok
}

// Len returns the rule count.
func (s *Store) Len() int { return len(s.rules) }

// Selectors returns every registered selector, sorted by textual form.
// Intended for tooling output; the resolver never iterates.
func (s *Store) Selectors() []Selector {
	sels := make([]Selector, 0, len(s.rules))
	for sel := range s.rules {
		sels = append(sels, sel)
	}
	sort.Slice(sels, func(i, j int) bool {
		return sels[i].String() < sels[j].String()
	})
	return sels
}
