package monoid

import (
	"fmt"
	"iter"
	"maps"
)

// Map combines key-wise. The result holds every key of either operand.
//
// A key present in only one operand keeps its value. A key present in both is resolved by
// the Combiner if one is configured; otherwise the right operand's value wins. Callers that
// rely on the left value winning must configure a Combiner that says so.
//
// An empty Map is the identity and is compatible with any Combiner. Two non-empty maps whose
// Combiners differ return ErrConfigurationMismatch.
type Map[K comparable, V any] struct {
	entries  map[K]V
	combiner *Combiner[V]
}

// NewMap returns a right-biased Map holding a copy of entries.
func NewMap[K comparable, V any](entries map[K]V) Map[K, V] {
	return NewMapWith(entries, nil)
}

// NewMapWith returns a Map holding a copy of entries that resolves shared keys with c.
// A nil c selects the right-biased default.
func NewMapWith[K comparable, V any](entries map[K]V, c *Combiner[V]) Map[K, V] {
	m := Map[K, V]{combiner: c}
	if len(entries) > 0 {
		m.entries = maps.Clone(entries)
	}
	return m
}

// MergeOf merges every map in entries, left to right, with combiner c.
func MergeOf[K comparable, V any](c *Combiner[V], entries ...map[K]V) (Map[K, V], error) {
	acc := Map[K, V]{combiner: c}
	for i, e := range entries {
		var err error
		acc, err = acc.Combine(NewMapWith(e, c))
		if err != nil {
			return Map[K, V]{combiner: c}, fmt.Errorf("merging map %d: %w", i, err)
		}
	}
	return acc, nil
}

// Identity returns the empty map carrying the receiver's Combiner.
func (m Map[K, V]) Identity() Map[K, V] { return Map[K, V]{combiner: m.combiner} }

func (m Map[K, V]) Combine(other Map[K, V]) (Map[K, V], error) {
	if len(other.entries) == 0 {
		if len(m.entries) == 0 && m.combiner == nil {
			return other, nil
		}
		return m, nil
	}
	if len(m.entries) == 0 {
		return other, nil
	}
	if m.combiner != other.combiner {
		return Map[K, V]{}, NewConfigurationMismatch("Map.Combine", m.combiner, other.combiner)
	}

	result := make(map[K]V, len(m.entries)+len(other.entries))
	maps.Copy(result, m.entries)
	for k, v := range other.entries {
		existing, ok := result[k]
		if !ok || m.combiner == nil {
			result[k] = v
			continue
		}
		merged, err := m.combiner.Apply("Map.Combine", existing, v)
		if err != nil {
			return Map[K, V]{}, fmt.Errorf("key %v: %w", k, err)
		}
		result[k] = merged
	}
	return Map[K, V]{entries: result, combiner: m.combiner}, nil
}

func (m Map[K, V]) CombineValue(other Value) (Value, error) {
	return combineValue("Map.Combine", m, other)
}

func (m Map[K, V]) IdentityValue() Value { return m.Identity() }

func (m Map[K, V]) IsIdentity() bool { return len(m.entries) == 0 }

// Combiner returns the configured combiner, or nil for the right-biased default.
func (m Map[K, V]) Combiner() *Combiner[V] { return m.combiner }

// Get returns the value stored for k.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// Contains reports whether k is present.
func (m Map[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Len returns the number of keys.
func (m Map[K, V]) Len() int { return len(m.entries) }

// Keys iterates the keys in unspecified order.
func (m Map[K, V]) Keys() iter.Seq[K] { return maps.Keys(m.entries) }

// All iterates key/value pairs in unspecified order.
func (m Map[K, V]) All() iter.Seq2[K, V] { return maps.All(m.entries) }

// Value returns a copy of the entries.
func (m Map[K, V]) Value() map[K]V {
	res := make(map[K]V, len(m.entries))
	maps.Copy(res, m.entries)
	return res
}

// EqualFunc reports whether both maps hold the same keys with values equal under eq.
// Combiners are not compared.
func (m Map[K, V]) EqualFunc(other Map[K, V], eq func(a, b V) bool) bool {
	return maps.EqualFunc(m.entries, other.entries, eq)
}

func (m Map[K, V]) String() string {
	return fmt.Sprintf("Map(%d, %s)", len(m.entries), m.combiner)
}
