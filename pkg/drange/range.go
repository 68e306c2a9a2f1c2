package drange

import (
	"fmt"

	"github.com/henderiw/drange/pkg/order"
)

// Range is the closed interval [from, to] over a discrete domain. It
// is a plain value: every operation returns new ranges and never
// modifies the receiver.
//
// Construction does not require from <= to. A degenerate range
// (from > to) is not empty: Iterator and the folds walk it from from
// down to to. Foreach does not, see iterator.go.
type Range[A any] struct {
	from A
	to   A
}

func RangeFrom[A any](from, to A) Range[A] {
	return Range[A]{from: from, to: to}
}

// From returns the first endpoint of r.
func (r Range[A]) From() A { return r.from }

// To returns the last endpoint of r.
func (r Range[A]) To() A { return r.to }

// Contains reports whether v lies within r.
func (r Range[A]) Contains(v A, ord order.Order[A]) bool {
	return ord.Gteqv(v, r.from) && ord.Lteqv(v, r.to)
}

// ContainsRange reports whether other lies entirely within r.
func (r Range[A]) ContainsRange(other Range[A], ord order.Order[A]) bool {
	return ord.Lteqv(r.from, other.from) && ord.Gteqv(r.to, other.to)
}

// Reverse swaps the endpoints. Reversing a normal range yields a
// degenerate one and vice versa; nothing is re-ordered.
func (r Range[A]) Reverse() Range[A] {
	return Range[A]{from: r.to, to: r.from}
}

// Equal compares both endpoints pointwise.
func (r Range[A]) Equal(other Range[A], ord order.Order[A]) bool {
	return ord.Eqv(r.from, other.from) && ord.Eqv(r.to, other.to)
}

func (r Range[A]) String() string {
	return fmt.Sprintf("[%v, %v]", r.from, r.to)
}

// Map applies f to both endpoints independently. Keeping the result
// normal is the caller's concern: f is not required to be monotone
// and the endpoints are not re-ordered.
func Map[A, B any](r Range[A], f func(A) B) Range[B] {
	return Range[B]{from: f(r.from), to: f(r.to)}
}
