package monoid

// Semigroup is a type with an associative binary operation.
//
// Implementations must satisfy a.Combine(b).Combine(c) == a.Combine(b.Combine(c)). The
// operation must not modify either operand.
type Semigroup[M any] interface {
	Combine(other M) (M, error)
}

// Monoid is a Semigroup with an identity element.
//
// Combining any value with Identity() on either side yields that value.
type Monoid[M any] interface {
	Semigroup[M]
	Identity() M
}

// Group is a Monoid in which every element has an inverse.
type Group[M any] interface {
	Monoid[M]
	// Inverse returns the element that combines with the receiver to the identity, or an
	// error when that element is not representable.
	Inverse() (M, error)
}

// Semiring adds a second associative operation, Times, with identity One. Times distributes
// over Combine, and the Combine identity annihilates: x.Times(zero) is zero.
type Semiring[M any] interface {
	Monoid[M]
	Times(other M) (M, error)
	One() M
}

// Ring is a Semiring whose Combine forms a Group.
type Ring[M any] interface {
	Semiring[M]
	Group[M]
}

type subtracter[M any] interface {
	Sub(other M) (M, error)
}

// Value is the type-erased form of a monoid element.
//
// The generic API rejects cross-type combination at compile time. Value is for callers that
// hold heterogeneous partial results behind an interface; combining two Values of different
// concrete types returns ErrTypeMismatch.
type Value interface {
	CombineValue(other Value) (Value, error)
	IdentityValue() Value
}

// Subtract returns a combined with the inverse of b. Types with a Sub method, such as Sum,
// subtract directly so that a representable difference never fails on an unrepresentable
// inverse.
func Subtract[M Group[M]](a, b M) (M, error) {
	if s, ok := any(a).(subtracter[M]); ok {
		return s.Sub(b)
	}
	inv, err := b.Inverse()
	if err != nil {
		return inv, err
	}
	return a.Combine(inv)
}

// combineValue implements Value.CombineValue for a concrete monoid type M.
func combineValue[M interface {
	Monoid[M]
	Value
}](op string, m M, other Value) (Value, error) {
	o, ok := other.(M)
	if !ok {
		return nil, NewTypeMismatch(op, m, other)
	}
	res, err := m.Combine(o)
	if err != nil {
		return nil, err
	}
	return res, nil
}
