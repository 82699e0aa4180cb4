package monoid

import "fmt"

// LawError reports a violated algebraic law together with the values that produced it.
type LawError struct {
	Law         string
	Left, Right any
}

func (e *LawError) Error() string {
	return fmt.Sprintf("%s violated: %v != %v", e.Law, e.Left, e.Right)
}

// CheckAssociative verifies (a·b)·c == a·(b·c) under eq.
func CheckAssociative[M Semigroup[M]](a, b, c M, eq func(x, y M) bool) error {
	ab, err := a.Combine(b)
	if err != nil {
		return err
	}
	left, err := ab.Combine(c)
	if err != nil {
		return err
	}
	bc, err := b.Combine(c)
	if err != nil {
		return err
	}
	right, err := a.Combine(bc)
	if err != nil {
		return err
	}
	if !eq(left, right) {
		return &LawError{Law: "associativity", Left: left, Right: right}
	}
	return nil
}

// CheckIdentity verifies e·a == a == a·e under eq.
func CheckIdentity[M Monoid[M]](a M, eq func(x, y M) bool) error {
	e := a.Identity()
	left, err := e.Combine(a)
	if err != nil {
		return err
	}
	if !eq(left, a) {
		return &LawError{Law: "left identity", Left: left, Right: a}
	}
	right, err := a.Combine(e)
	if err != nil {
		return err
	}
	if !eq(right, a) {
		return &LawError{Law: "right identity", Left: right, Right: a}
	}
	return nil
}

// CheckCommutative verifies a·b == b·a under eq.
func CheckCommutative[M Semigroup[M]](a, b M, eq func(x, y M) bool) error {
	ab, err := a.Combine(b)
	if err != nil {
		return err
	}
	ba, err := b.Combine(a)
	if err != nil {
		return err
	}
	if !eq(ab, ba) {
		return &LawError{Law: "commutativity", Left: ab, Right: ba}
	}
	return nil
}

// CheckIdempotent verifies a·a == a under eq.
func CheckIdempotent[M Semigroup[M]](a M, eq func(x, y M) bool) error {
	aa, err := a.Combine(a)
	if err != nil {
		return err
	}
	if !eq(aa, a) {
		return &LawError{Law: "idempotence", Left: aa, Right: a}
	}
	return nil
}

// CheckInverse verifies a·a⁻¹ == e == a⁻¹·a under eq.
func CheckInverse[M Group[M]](a M, eq func(x, y M) bool) error {
	e := a.Identity()
	inv, err := a.Inverse()
	if err != nil {
		return err
	}
	right, err := a.Combine(inv)
	if err != nil {
		return err
	}
	if !eq(right, e) {
		return &LawError{Law: "right inverse", Left: right, Right: e}
	}
	left, err := inv.Combine(a)
	if err != nil {
		return err
	}
	if !eq(left, e) {
		return &LawError{Law: "left inverse", Left: left, Right: e}
	}
	return nil
}

// CheckLaws verifies associativity over a, b, c and identity for each of them.
func CheckLaws[M Monoid[M]](a, b, c M, eq func(x, y M) bool) error {
	if err := CheckAssociative(a, b, c, eq); err != nil {
		return err
	}
	for _, v := range []M{a, b, c} {
		if err := CheckIdentity(v, eq); err != nil {
			return err
		}
	}
	return nil
}

// CheckDistributive verifies a·(b+c) == a·b + a·c and (a+b)·c == a·c + b·c under eq,
// where + is Combine and · is Times.
func CheckDistributive[M Semiring[M]](a, b, c M, eq func(x, y M) bool) error {
	bc, err := b.Combine(c)
	if err != nil {
		return err
	}
	left, err := a.Times(bc)
	if err != nil {
		return err
	}
	ab, err := a.Times(b)
	if err != nil {
		return err
	}
	ac, err := a.Times(c)
	if err != nil {
		return err
	}
	right, err := ab.Combine(ac)
	if err != nil {
		return err
	}
	if !eq(left, right) {
		return &LawError{Law: "left distributivity", Left: left, Right: right}
	}

	sum, err := a.Combine(b)
	if err != nil {
		return err
	}
	left, err = sum.Times(c)
	if err != nil {
		return err
	}
	bc, err = b.Times(c)
	if err != nil {
		return err
	}
	right, err = ac.Combine(bc)
	if err != nil {
		return err
	}
	if !eq(left, right) {
		return &LawError{Law: "right distributivity", Left: left, Right: right}
	}
	return nil
}

// CheckSemiringLaws verifies the monoid laws of Combine, associativity and identity of
// Times, distributivity and annihilation by the Combine identity.
func CheckSemiringLaws[M Semiring[M]](a, b, c M, eq func(x, y M) bool) error {
	if err := CheckLaws(a, b, c, eq); err != nil {
		return err
	}

	ab, err := a.Times(b)
	if err != nil {
		return err
	}
	left, err := ab.Times(c)
	if err != nil {
		return err
	}
	bc, err := b.Times(c)
	if err != nil {
		return err
	}
	right, err := a.Times(bc)
	if err != nil {
		return err
	}
	if !eq(left, right) {
		return &LawError{Law: "multiplicative associativity", Left: left, Right: right}
	}

	for _, v := range []M{a, b, c} {
		one := v.One()
		l, err := one.Times(v)
		if err != nil {
			return err
		}
		r, err := v.Times(one)
		if err != nil {
			return err
		}
		if !eq(l, v) || !eq(r, v) {
			return &LawError{Law: "multiplicative identity", Left: l, Right: r}
		}

		zero := v.Identity()
		z, err := v.Times(zero)
		if err != nil {
			return err
		}
		if !eq(z, zero) {
			return &LawError{Law: "annihilation", Left: z, Right: zero}
		}
	}
	return CheckDistributive(a, b, c, eq)
}

// CheckRingLaws verifies CheckSemiringLaws, commutativity of Combine and an inverse for
// each of a, b and c.
func CheckRingLaws[M Ring[M]](a, b, c M, eq func(x, y M) bool) error {
	if err := CheckSemiringLaws(a, b, c, eq); err != nil {
		return err
	}
	if err := CheckCommutative(a, b, eq); err != nil {
		return err
	}
	for _, v := range []M{a, b, c} {
		if err := CheckInverse(v, eq); err != nil {
			return err
		}
	}
	return nil
}

// Equal is an eq function for comparable monoid types such as Sum or String.
func Equal[M comparable](x, y M) bool { return x == y }
