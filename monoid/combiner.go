package monoid

import "errors"

// Combiner resolves two values that meet during a merge, such as the values of a key present
// in both operands of a Map.Combine.
//
// A Combiner is compared by pointer: two Map or Option values are compatible only when they
// hold the same *Combiner. Build one per aggregation and share it between partitions.
type Combiner[V any] struct {
	name string
	fn   func(a, b V) (V, error)
}

// NewCombiner returns a Combiner for an infallible function.
func NewCombiner[V any](name string, fn func(a, b V) V) *Combiner[V] {
	return &Combiner[V]{
		name: name,
		fn: func(a, b V) (V, error) {
			return fn(a, b), nil
		},
	}
}

// NewTryCombiner returns a Combiner for a function that may fail. Failures surface from
// Combine as ErrMappingFailure wrapping the returned error.
func NewTryCombiner[V any](name string, fn func(a, b V) (V, error)) *Combiner[V] {
	return &Combiner[V]{name: name, fn: fn}
}

// MonoidCombiner lifts the Combine operation of V into a Combiner, so that a Map of monoid
// values merges colliding entries with their own algebra.
func MonoidCombiner[V Monoid[V]](name string) *Combiner[V] {
	return &Combiner[V]{
		name: name,
		fn: func(a, b V) (V, error) {
			return a.Combine(b)
		},
	}
}

// Name returns the label given at construction.
func (c *Combiner[V]) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Apply runs the combiner. Errors returned by the function are wrapped as ErrMappingFailure
// unless they already carry a monoid error kind.
func (c *Combiner[V]) Apply(op string, a, b V) (V, error) {
	r, err := c.fn(a, b)
	if err != nil {
		var merr *Error
		if errors.As(err, &merr) {
			return r, err
		}
		return r, NewMappingFailure(op, err)
	}
	return r, nil
}

func (c *Combiner[V]) String() string {
	if c == nil {
		return "<none>"
	}
	return "combiner(" + c.name + ")"
}
