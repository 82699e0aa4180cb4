package monoid

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set combines by union. Identity is the empty set.
//
// Union is commutative and idempotent: a.Combine(a) equals a.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet returns a set holding the distinct values of items.
func NewSet[T comparable](items ...T) Set[T] {
	if len(items) == 0 {
		return Set[T]{}
	}
	m := make(map[T]struct{}, len(items))
	for _, v := range items {
		m[v] = struct{}{}
	}
	return Set[T]{items: m}
}

// SetFrom copies the keys of m into a new set.
func SetFrom[T comparable](m map[T]struct{}) Set[T] {
	if len(m) == 0 {
		return Set[T]{}
	}
	return Set[T]{items: maps.Clone(m)}
}

// UnionOf returns the union of every set in sets.
func UnionOf[T comparable](sets ...Set[T]) Set[T] {
	acc := Set[T]{}
	for _, s := range sets {
		// union cannot fail
		acc, _ = acc.Combine(s)
	}
	return acc
}

func (s Set[T]) Identity() Set[T] { return Set[T]{} }

func (s Set[T]) Combine(other Set[T]) (Set[T], error) {
	if len(other.items) == 0 {
		return s, nil
	}
	if len(s.items) == 0 {
		return other, nil
	}

	// Pre-allocate for the disjoint case. Overlap only leaves spare capacity.
	m := make(map[T]struct{}, len(s.items)+len(other.items))
	for v := range s.items {
		m[v] = struct{}{}
	}
	for v := range other.items {
		m[v] = struct{}{}
	}
	return Set[T]{items: m}, nil
}

func (s Set[T]) CombineValue(other Value) (Value, error) {
	return combineValue("Set.Combine", s, other)
}

func (s Set[T]) IdentityValue() Value { return s.Identity() }

func (s Set[T]) IsIdentity() bool { return len(s.items) == 0 }

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s.items) }

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Items iterates the elements in unspecified order.
func (s Set[T]) Items() iter.Seq[T] {
	return maps.Keys(s.items)
}

// Value returns a copy of the underlying set.
func (s Set[T]) Value() map[T]struct{} {
	m := make(map[T]struct{}, len(s.items))
	maps.Copy(m, s.items)
	return m
}

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return maps.Equal(s.items, other.items)
}

// String lists the elements in the order of their formatted text, e.g. Set[1 2 3].
func (s Set[T]) String() string {
	parts := make([]string, 0, len(s.items))
	for v := range s.items {
		parts = append(parts, fmt.Sprint(v))
	}
	slices.Sort(parts)
	return "Set[" + strings.Join(parts, " ") + "]"
}
