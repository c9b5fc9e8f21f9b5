package feature

import "github.com/erraggy/dirattrs/internal/maputil"

// NameSet is a set of attribute names. The nil set is empty.
type NameSet map[string]struct{}

// Names returns a set holding names.
func Names(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	return maputil.SortedKeys(s)
}
