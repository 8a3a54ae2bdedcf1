package analysis

import (
	"sort"
	"strings"

	"github.com/msto63/ffparse/internal/grammar"
)

// Set is an unordered set of terminal names and markers
type Set map[string]struct{}

// NewSet returns a set holding items
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts item and reports whether the set grew
func (s Set) Add(item string) bool {
	if _, ok := s[item]; ok {
		return false
	}
	s[item] = struct{}{}
	return true
}

// Has reports membership
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Union adds every member of other and reports whether the set grew
func (s Set) Union(other Set) bool {
	return s.UnionWithout(other, "")
}

// UnionWithout adds every member of other except skip
func (s Set) UnionWithout(other Set, skip string) bool {
	changed := false
	for item := range other {
		if item == skip {
			continue
		}
		if s.Add(item) {
			changed = true
		}
	}
	return changed
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// IsSubsetOf reports whether every member of s is in other
func (s Set) IsSubsetOf(other Set) bool {
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same members
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Sorted returns the members in lexical order with ε moved to the end
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		if item != grammar.Epsilon {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	if s.Has(grammar.Epsilon) {
		out = append(out, grammar.Epsilon)
	}
	return out
}

func (s Set) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
