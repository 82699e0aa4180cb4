// Package option provides Option, a value that may be absent, as a monoid.
//
// None is the identity: it leaves any other Option unchanged when combined on either side.
// Two Some values are resolved by the configured monoid.Combiner, or by keeping the left
// value when none is configured. Options that carry different combiners cannot be combined.
//
//	o, err := option.Some(5).Combine(option.None[int]())   // Some(5)
//	o, err = o.Combine(option.Some(3))                     // Some(5): first wins
//
//	add := monoid.NewCombiner("sum", func(a, b int) int { return a + b })
//	o, err = option.Some(5).WithCombiner(add).Combine(option.Some(3).WithCombiner(add)) // Some(8)
package option

import (
	"fmt"

	"algebra/monoid"
)

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value    T
	ok       bool
	combiner *monoid.Combiner[T]
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Value returns the held value, or the zero value of T for None.
func (o Option[T]) Value() T { return o.value }

// GetOrElse returns the held value, or def for None.
func (o Option[T]) GetOrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// WithCombiner returns a copy of o that resolves Some/Some combination with c.
func (o Option[T]) WithCombiner(c *monoid.Combiner[T]) Option[T] {
	o.combiner = c
	return o
}

// Combiner returns the configured combiner, or nil when the left value wins.
func (o Option[T]) Combiner() *monoid.Combiner[T] { return o.combiner }

// Identity returns None carrying the receiver's combiner.
func (o Option[T]) Identity() Option[T] {
	return Option[T]{combiner: o.combiner}
}

func (o Option[T]) IsIdentity() bool { return !o.ok }

func (o Option[T]) Combine(other Option[T]) (Option[T], error) {
	if !other.ok {
		if !o.ok && o.combiner == nil {
			return other, nil
		}
		return o, nil
	}
	if !o.ok {
		return other, nil
	}
	if o.combiner != other.combiner {
		return Option[T]{}, monoid.NewConfigurationMismatch("Option.Combine", o.combiner, other.combiner)
	}
	if o.combiner == nil {
		return o, nil
	}
	v, err := o.combiner.Apply("Option.Combine", o.value, other.value)
	if err != nil {
		return Option[T]{}, err
	}
	return Option[T]{value: v, ok: true, combiner: o.combiner}, nil
}

func (o Option[T]) CombineValue(other monoid.Value) (monoid.Value, error) {
	v, ok := other.(Option[T])
	if !ok {
		return nil, monoid.NewTypeMismatch("Option.Combine", o, other)
	}
	res, err := o.Combine(v)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (o Option[T]) IdentityValue() monoid.Value { return o.Identity() }

// Filter returns o if it holds a value satisfying pred, and None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return o.Identity()
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Equal reports whether a and b are both None, or both Some with equal values.
// Combiners are not compared.
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}
