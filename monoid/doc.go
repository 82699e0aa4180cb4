/*
Package monoid provides value types that combine associatively and have an identity element.

A monoid is the algebra behind safe partitioned aggregation: when every partial result is a
monoid value, partials can be combined in any grouping and the total is the same. Values in
this package are immutable. [Semigroup.Combine] returns a new value and never modifies its
operands.

  - **Numeric**: [Sum], [Product], [Max], [Min] over any [Number].
  - **Collections**: [Set] (union), [Seq] (concatenation), [String] (text concatenation) and
    [Map] (key-wise merge with an optional [Combiner]).
  - **Type erasure**: every monoid also implements [Value], which combines across an
    interface boundary and reports [ErrTypeMismatch] instead of coercing.
  - **Rings**: [Sum] also has Times and One, making it a [Ring] over signed and float types
    and a [Semiring] over unsigned ones. [Subtract] never wraps: it reports [ErrOverflow].
  - **Laws**: [CheckAssociative], [CheckIdentity], [CheckDistributive] and friends verify the
    algebraic contract for new monoid types.

# Commutativity

Sum, Product, Max, Min and Set are commutative. Map is commutative only when its combiner is.
Seq and String are not: combining a then b keeps a's elements first.

# Configuration

A [Map] may carry a [*Combiner] that resolves keys present in both operands. Without one the
right operand wins. Two non-empty maps with different combiners refuse to combine and return
[ErrConfigurationMismatch]; an empty map is the identity and adopts the other operand's
combiner.

	hits := monoid.NewCombiner("sum", func(a, b int) int { return a + b })
	p1 := monoid.NewMapWith(map[string]int{"a": 1, "b": 2}, hits)
	p2 := monoid.NewMapWith(map[string]int{"b": 3}, hits)
	total, err := p1.Combine(p2) // {a:1, b:5}

# Overflow

Integer [Sum] and [Product] detect overflow and return [ErrOverflow]. Floating point values
follow IEEE-754: overflow saturates to ±Inf and NaN propagates.
*/
package monoid
