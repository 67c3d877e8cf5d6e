package graph

import "iter"

// Set is an unordered collection of unique nodes backed by a map.
// Iterate it like any map:
//
//	for v := range s { ... }
//
// The zero value is not usable - use NewSet or CollectSet.
type Set[T comparable] map[T]struct{}

// NewSet creates a set containing the given items.
// Duplicates collapse to a single element.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// CollectSet drains an iterator into a new set. It is the set-valued
// counterpart of [slices.Collect] for queries like [Graph.Nodes] where the
// caller wants membership semantics instead of an ordered sequence.
func CollectSet[T comparable](seq iter.Seq[T]) Set[T] {
	s := Set[T]{}
	for v := range seq {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set. Adding an element already present is a no-op.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Contains reports whether v is an element of the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int { return len(s) }
