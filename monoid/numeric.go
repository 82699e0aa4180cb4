package monoid

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types the numeric monoids accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum combines by addition. Identity is 0.
//
// Integer overflow is reported as ErrOverflow. Floats follow IEEE-754 and may saturate to ±Inf.
//
// With Times and One, Sum is also the numeric Ring. For unsigned T it is only a Semiring:
// Inverse of a non-zero unsigned value fails with ErrOverflow.
type Sum[T Number] struct {
	value T
}

var _ Ring[Sum[int]] = Sum[int]{}

// NewSum wraps v.
func NewSum[T Number](v T) Sum[T] { return Sum[T]{value: v} }

// SumOf folds values by addition, returning the identity for no values.
func SumOf[T Number](values ...T) (Sum[T], error) {
	return foldRaw(NewSum[T], values)
}

func (s Sum[T]) Value() T { return s.value }

func (s Sum[T]) IsIdentity() bool { return s.value == 0 }

func (s Sum[T]) Identity() Sum[T] { return Sum[T]{} }

func (s Sum[T]) Combine(other Sum[T]) (Sum[T], error) {
	r := s.value + other.value
	if addOverflows(s.value, other.value, r) {
		return Sum[T]{}, newOverflow("Sum.Combine", s.value, other.value)
	}
	return Sum[T]{value: r}, nil
}

// Inverse returns the negated sum. It fails with ErrOverflow when the negation is not
// representable: the smallest signed integer, or any non-zero unsigned value.
func (s Sum[T]) Inverse() (Sum[T], error) {
	var zero T
	if !isFloat[T]() && s.value != 0 && (!isSigned[T]() || s.value == lowest[T]()) {
		return Sum[T]{}, newOverflow("Sum.Inverse", s.value)
	}
	return Sum[T]{value: zero - s.value}, nil
}

// Sub returns s minus other. Overflow is checked on the difference itself, not on Inverse.
func (s Sum[T]) Sub(other Sum[T]) (Sum[T], error) {
	r := s.value - other.value
	if subOverflows(s.value, other.value, r) {
		return Sum[T]{}, newOverflow("Sum.Sub", s.value, other.value)
	}
	return Sum[T]{value: r}, nil
}

// Times multiplies two sums, checking integer overflow like Product.
func (s Sum[T]) Times(other Sum[T]) (Sum[T], error) {
	r := s.value * other.value
	if mulOverflows(s.value, other.value, r) {
		return Sum[T]{}, newOverflow("Sum.Times", s.value, other.value)
	}
	return Sum[T]{value: r}, nil
}

// One returns the multiplicative identity.
func (s Sum[T]) One() Sum[T] { return Sum[T]{value: 1} }

func (s Sum[T]) CombineValue(other Value) (Value, error) {
	return combineValue("Sum.Combine", s, other)
}

func (s Sum[T]) IdentityValue() Value { return s.Identity() }

func (s Sum[T]) String() string { return fmt.Sprintf("Sum(%v)", s.value) }

// Product combines by multiplication. Identity is 1.
//
// Integer overflow is reported as ErrOverflow. Floats follow IEEE-754.
type Product[T Number] struct {
	value T
}

// NewProduct wraps v.
func NewProduct[T Number](v T) Product[T] { return Product[T]{value: v} }

// ProductOf folds values by multiplication, returning the identity for no values.
func ProductOf[T Number](values ...T) (Product[T], error) {
	return foldRaw(NewProduct[T], values)
}

func (p Product[T]) Value() T { return p.value }

func (p Product[T]) IsIdentity() bool { return p.value == 1 }

func (p Product[T]) Identity() Product[T] { return Product[T]{value: 1} }

func (p Product[T]) Combine(other Product[T]) (Product[T], error) {
	r := p.value * other.value
	if mulOverflows(p.value, other.value, r) {
		return p.Identity(), newOverflow("Product.Combine", p.value, other.value)
	}
	return Product[T]{value: r}, nil
}

func (p Product[T]) CombineValue(other Value) (Value, error) {
	return combineValue("Product.Combine", p, other)
}

func (p Product[T]) IdentityValue() Value { return p.Identity() }

func (p Product[T]) String() string { return fmt.Sprintf("Product(%v)", p.value) }

// Max keeps the larger value. Identity is -Inf for floats and the smallest representable
// value for integers. A NaN operand propagates.
type Max[T Number] struct {
	value T
}

// NewMax wraps v.
func NewMax[T Number](v T) Max[T] { return Max[T]{value: v} }

// MaxOf returns the largest of values, or the identity for no values.
func MaxOf[T Number](values ...T) (Max[T], error) {
	return foldRaw(NewMax[T], values)
}

func (m Max[T]) Value() T { return m.value }

func (m Max[T]) IsIdentity() bool { return m.value == lowest[T]() }

func (m Max[T]) Identity() Max[T] { return Max[T]{value: lowest[T]()} }

func (m Max[T]) Combine(other Max[T]) (Max[T], error) {
	return Max[T]{value: max(m.value, other.value)}, nil
}

func (m Max[T]) CombineValue(other Value) (Value, error) {
	return combineValue("Max.Combine", m, other)
}

func (m Max[T]) IdentityValue() Value { return m.Identity() }

func (m Max[T]) String() string { return fmt.Sprintf("Max(%v)", m.value) }

// Min keeps the smaller value. Identity is +Inf for floats and the largest representable
// value for integers. A NaN operand propagates.
type Min[T Number] struct {
	value T
}

// NewMin wraps v.
func NewMin[T Number](v T) Min[T] { return Min[T]{value: v} }

// MinOf returns the smallest of values, or the identity for no values.
func MinOf[T Number](values ...T) (Min[T], error) {
	return foldRaw(NewMin[T], values)
}

func (m Min[T]) Value() T { return m.value }

func (m Min[T]) IsIdentity() bool { return m.value == highest[T]() }

func (m Min[T]) Identity() Min[T] { return Min[T]{value: highest[T]()} }

func (m Min[T]) Combine(other Min[T]) (Min[T], error) {
	return Min[T]{value: min(m.value, other.value)}, nil
}

func (m Min[T]) CombineValue(other Value) (Value, error) {
	return combineValue("Min.Combine", m, other)
}

func (m Min[T]) IdentityValue() Value { return m.Identity() }

func (m Min[T]) String() string { return fmt.Sprintf("Min(%v)", m.value) }

// foldRaw wraps each raw value and folds left to right from the identity.
func foldRaw[T any, M Monoid[M]](wrap func(T) M, values []T) (M, error) {
	var zero M
	acc := zero.Identity()
	for _, v := range values {
		var err error
		acc, err = acc.Combine(wrap(v))
		if err != nil {
			return zero.Identity(), err
		}
	}
	return acc, nil
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

func addOverflows[T Number](a, b, r T) bool {
	if isFloat[T]() {
		return false
	}
	if isSigned[T]() {
		return (b > 0 && r < a) || (b < 0 && r > a)
	}
	return r < a
}

func subOverflows[T Number](a, b, r T) bool {
	if isFloat[T]() {
		return false
	}
	if isSigned[T]() {
		return (b > 0 && r > a) || (b < 0 && r < a)
	}
	return b > a
}

func mulOverflows[T Number](a, b, r T) bool {
	if isFloat[T]() || a == 0 || b == 0 {
		return false
	}
	if isSigned[T]() {
		var zero T
		neg := zero - 1
		// MinInt * -1 wraps back to MinInt and survives the division check below.
		if b == neg {
			return r == a
		}
		if a == neg {
			return r == b
		}
	}
	return r/b != a
}

// lowest returns the identity of Max[T].
func lowest[T Number]() T {
	return bound[T](false)
}

// highest returns the identity of Min[T].
func highest[T Number]() T {
	return bound[T](true)
}

func bound[T Number](upper bool) T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if upper {
			rv.SetInt(int64(1)<<(bits-1) - 1)
		} else {
			rv.SetInt(int64(-1) << (bits - 1))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if upper {
			rv.SetUint(^uint64(0) >> (64 - bits))
		}
	case reflect.Float32, reflect.Float64:
		if upper {
			rv.SetFloat(math.Inf(1))
		} else {
			rv.SetFloat(math.Inf(-1))
		}
	}
	return v
}
