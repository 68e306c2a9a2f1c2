package order

import "cmp"

// Order is a total order over A. Every range operation takes its
// Order explicitly, so the same values can be driven by different
// orderings per call site.
type Order[A any] interface {
	Compare(a, b A) int
	Lt(a, b A) bool
	Lteqv(a, b A) bool
	Gt(a, b A) bool
	Gteqv(a, b A) bool
	Eqv(a, b A) bool
	Max(a, b A) A
	Min(a, b A) A
}

type order[A any] struct {
	compare func(a, b A) int
}

// FromCompare derives the full Order surface from a three-way
// compare function.
func FromCompare[A any](compare func(a, b A) int) Order[A] {
	return order[A]{compare: compare}
}

// Natural returns the Order of the built-in comparison operators.
func Natural[A cmp.Ordered]() Order[A] {
	return FromCompare(cmp.Compare[A])
}

// Reverse returns the dual of o: every comparison flips direction,
// so Max becomes Min and vice versa.
func Reverse[A any](o Order[A]) Order[A] {
	return FromCompare(func(a, b A) int { return o.Compare(b, a) })
}

func (o order[A]) Compare(a, b A) int { return o.compare(a, b) }

func (o order[A]) Lt(a, b A) bool { return o.compare(a, b) < 0 }

func (o order[A]) Lteqv(a, b A) bool { return o.compare(a, b) <= 0 }

func (o order[A]) Gt(a, b A) bool { return o.compare(a, b) > 0 }

func (o order[A]) Gteqv(a, b A) bool { return o.compare(a, b) >= 0 }

func (o order[A]) Eqv(a, b A) bool { return o.compare(a, b) == 0 }

func (o order[A]) Max(a, b A) A {
	if o.compare(a, b) < 0 {
		return b
	}
	return a
}

func (o order[A]) Min(a, b A) A {
	if o.compare(a, b) > 0 {
		return b
	}
	return a
}
