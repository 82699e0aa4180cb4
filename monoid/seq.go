package monoid

import (
	"fmt"
	"iter"
	"slices"
)

// Seq combines by concatenation: the receiver's elements followed by the argument's.
// Identity is the empty sequence.
//
// Concatenation is associative but not commutative.
type Seq[T any] struct {
	items []T
}

// NewSeq returns a sequence holding a copy of items.
func NewSeq[T any](items ...T) Seq[T] {
	if len(items) == 0 {
		return Seq[T]{}
	}
	return Seq[T]{items: slices.Clone(items)}
}

// ConcatOf concatenates seqs in order.
func ConcatOf[T any](seqs ...Seq[T]) Seq[T] {
	total := 0
	for _, s := range seqs {
		total += len(s.items)
	}
	if total == 0 {
		return Seq[T]{}
	}
	items := make([]T, 0, total)
	for _, s := range seqs {
		items = append(items, s.items...)
	}
	return Seq[T]{items: items}
}

func (s Seq[T]) Identity() Seq[T] { return Seq[T]{} }

func (s Seq[T]) Combine(other Seq[T]) (Seq[T], error) {
	if len(other.items) == 0 {
		return s, nil
	}
	if len(s.items) == 0 {
		return other, nil
	}
	// never append to s.items: its backing array may be shared
	items := make([]T, 0, len(s.items)+len(other.items))
	items = append(items, s.items...)
	items = append(items, other.items...)
	return Seq[T]{items: items}, nil
}

func (s Seq[T]) CombineValue(other Value) (Value, error) {
	return combineValue("Seq.Combine", s, other)
}

func (s Seq[T]) IdentityValue() Value { return s.Identity() }

func (s Seq[T]) IsIdentity() bool { return len(s.items) == 0 }

// Len returns the number of elements.
func (s Seq[T]) Len() int { return len(s.items) }

// At returns the element at index i. It panics if i is out of range.
func (s Seq[T]) At(i int) T { return s.items[i] }

// All iterates index/element pairs in order.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Value returns a copy of the elements. The identity yields nil.
func (s Seq[T]) Value() []T {
	return slices.Clone(s.items)
}

func (s Seq[T]) String() string {
	return fmt.Sprintf("Seq%v", s.items)
}

// String combines text by concatenation. Identity is "".
//
// It is Seq specialised to characters and shares its ordering: not commutative.
type String struct {
	value string
}

// NewString wraps s.
func NewString(s string) String { return String{value: s} }

// ConcatStrings concatenates parts in order.
func ConcatStrings(parts ...string) String {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return String{value: string(buf)}
}

func (s String) Identity() String { return String{} }

func (s String) Combine(other String) (String, error) {
	return String{value: s.value + other.value}, nil
}

func (s String) CombineValue(other Value) (Value, error) {
	return combineValue("String.Combine", s, other)
}

func (s String) IdentityValue() Value { return s.Identity() }

func (s String) IsIdentity() bool { return s.value == "" }

// Len returns the length in bytes.
func (s String) Len() int { return len(s.value) }

func (s String) Value() string { return s.value }

func (s String) String() string { return s.value }
