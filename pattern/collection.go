package pattern

import "sort"

// PatternCollection is a named set of patterns (used by font-collection
// formats such as VF3), ordered by name. Go has no ecosystem equivalent of
// Rust's BTreeMap in the retrieved pack, so iteration order is recovered by
// sorting the plain map's keys on demand rather than maintaining an
// order-preserving container (documented as a standard-library exception
// in DESIGN.md).
type PatternCollection struct {
	Attributes []PatternAttribute
	Patterns   map[string]Pattern
}

// NewPatternCollection builds an empty collection.
func NewPatternCollection() PatternCollection {
	return PatternCollection{Patterns: map[string]Pattern{}}
}

// SortedNames returns the collection's pattern names in ascending order,
// mirroring BTreeMap's iteration order.
func (c PatternCollection) SortedNames() []string {
	names := make([]string, 0, len(c.Patterns))
	for name := range c.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Insert adds or replaces the pattern registered under name.
func (c PatternCollection) Insert(name string, p Pattern) {
	c.Patterns[name] = p
}
