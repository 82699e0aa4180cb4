// Package reduce folds sequences of monoid values.
//
// Every function here relies only on associativity and the identity element, so for any
// lawful monoid Reduce, ReduceRight, TreeReduce and ParallelReduce return the same result.
// None of them reorder operands: non-commutative monoids such as monoid.Seq keep the input
// order.
//
// The identity is taken from the zero value of M (zero.Identity()). Types whose identity
// depends on configuration, such as a monoid.Map with a Combiner, are configuration-neutral
// when empty, so the zero-derived identity combines with any of them. Use Fold to supply an
// explicit seed.
//
// Errors returned by Combine are passed through unchanged.
package reduce

import (
	"iter"

	"algebra/monoid"
)

func identity[M monoid.Monoid[M]]() M {
	var zero M
	return zero.Identity()
}

// Reduce combines values left to right. An empty slice yields the identity of M.
func Reduce[M monoid.Monoid[M]](values []M) (M, error) {
	if len(values) == 0 {
		return identity[M](), nil
	}
	return Fold(values[0], values[1:]...)
}

// Fold combines values left to right, starting from seed.
func Fold[M monoid.Semigroup[M]](seed M, values ...M) (M, error) {
	acc := seed
	for _, v := range values {
		var err error
		acc, err = acc.Combine(v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// ReduceRight associates to the right: v0·(v1·(…·vn)). The operand order is unchanged.
func ReduceRight[M monoid.Monoid[M]](values []M) (M, error) {
	if len(values) == 0 {
		return identity[M](), nil
	}
	acc := values[len(values)-1]
	for i := len(values) - 2; i >= 0; i-- {
		var err error
		acc, err = values[i].Combine(acc)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// TreeReduce combines adjacent pairs in rounds until one value remains, giving a balanced
// combination tree of depth log2(n).
func TreeReduce[M monoid.Monoid[M]](values []M) (M, error) {
	switch len(values) {
	case 0:
		return identity[M](), nil
	case 1:
		return values[0], nil
	}

	level := make([]M, 0, (len(values)+1)/2)
	cur := values
	for len(cur) > 1 {
		level = level[:0]
		for i := 0; i+1 < len(cur); i += 2 {
			v, err := cur[i].Combine(cur[i+1])
			if err != nil {
				return v, err
			}
			level = append(level, v)
		}
		if len(cur)%2 == 1 {
			level = append(level, cur[len(cur)-1])
		}
		// level is read and rewritten in place from the next round on; writes never
		// overtake reads since index i/2 <= i.
		cur = level
	}
	return cur[0], nil
}

// ReduceSeq combines the elements of seq in order. An empty sequence yields the identity.
func ReduceSeq[M monoid.Monoid[M]](seq iter.Seq[M]) (M, error) {
	acc := identity[M]()
	for v := range seq {
		var err error
		acc, err = acc.Combine(v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Scan yields the running aggregate after each element of seq.
// On failure it yields the aggregate so far with the error and stops.
func Scan[M monoid.Monoid[M]](seq iter.Seq[M]) iter.Seq2[M, error] {
	return func(yield func(M, error) bool) {
		acc := identity[M]()
		for v := range seq {
			next, err := acc.Combine(v)
			if err != nil {
				yield(acc, err)
				return
			}
			acc = next
			if !yield(acc, nil) {
				return
			}
		}
	}
}

// ReduceValues folds type-erased values starting from seed. Mixing concrete types fails
// with monoid.ErrTypeMismatch.
//
// A nil seed starts the fold from the first value; with no values the result is nil.
func ReduceValues(seed monoid.Value, values []monoid.Value) (monoid.Value, error) {
	acc := seed
	for _, v := range values {
		if acc == nil {
			acc = v
			continue
		}
		var err error
		acc, err = acc.CombineValue(v)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
