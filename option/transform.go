package option

import "algebra/monoid"

// Map applies f to the value of o. None maps to None.
// The result carries no combiner: a combiner for T does not apply to U.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// TryMap applies a fallible f to the value of o. An error from f is returned wrapped as
// monoid.ErrMappingFailure; it is never turned into None.
func TryMap[T, U any](o Option[T], f func(T) (U, error)) (Option[U], error) {
	if !o.ok {
		return None[U](), nil
	}
	v, err := f(o.value)
	if err != nil {
		return None[U](), monoid.NewMappingFailure("Option.TryMap", err)
	}
	return Some(v), nil
}

// FlatMap returns f applied to the value of o, or None.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// TryFlatMap is FlatMap for a fallible f. Errors are wrapped as monoid.ErrMappingFailure.
func TryFlatMap[T, U any](o Option[T], f func(T) (Option[U], error)) (Option[U], error) {
	if !o.ok {
		return None[U](), nil
	}
	r, err := f(o.value)
	if err != nil {
		return None[U](), monoid.NewMappingFailure("Option.TryFlatMap", err)
	}
	return r, nil
}

// CombineAll folds opts left to right with None as the identity. Two values meet through c,
// or the first one is kept when c is nil. The result carries c.
//
// All-None input yields None. Every Some must be configured with c itself, as Combine
// requires of its operands; any other combiner, nil included, fails with
// monoid.ErrConfigurationMismatch. None elements are neutral to configuration.
func CombineAll[T any](c *monoid.Combiner[T], opts ...Option[T]) (Option[T], error) {
	acc := Option[T]{combiner: c}
	for _, o := range opts {
		if !o.ok {
			continue
		}
		if o.combiner != c {
			return Option[T]{}, monoid.NewConfigurationMismatch("Option.CombineAll", c, o.combiner)
		}
		if !acc.ok {
			acc = o
			continue
		}
		if c == nil {
			continue
		}
		v, err := c.Apply("Option.CombineAll", acc.value, o.value)
		if err != nil {
			return Option[T]{}, err
		}
		acc = Option[T]{value: v, ok: true, combiner: c}
	}
	return acc, nil
}

// OrElse returns the first Some among opts, or None.
func OrElse[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.ok {
			return o
		}
	}
	return None[T]()
}

// Flatten returns the values of the Some elements of opts, in order.
func Flatten[T any](opts []Option[T]) []T {
	var res []T
	for _, o := range opts {
		if o.ok {
			res = append(res, o.value)
		}
	}
	return res
}

// Sequence returns Some of every value if all of opts are Some, and None otherwise.
// Empty input yields Some of an empty slice.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	res := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		res = append(res, o.value)
	}
	return Some(res)
}
