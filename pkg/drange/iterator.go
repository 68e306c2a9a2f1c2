package drange

import (
	"errors"

	"github.com/henderiw/drange/pkg/discrete"
	"github.com/henderiw/drange/pkg/order"
)

// ErrExhausted is returned by Take once the iterator has yielded its
// final element.
var ErrExhausted = errors.New("iterator exhausted")

// Iterator walks a range lazily, one element per Take. It is not
// restartable and is owned by a single consumer; build a fresh one
// per goroutine.
//
// Direction is decided on every step: while the current value has
// not passed To the cursor advances with Succ, on a degenerate range
// it retreats with Pred. Either way the walk ends once To itself has
// been yielded.
type Iterator[A any] struct {
	cur  A
	to   A
	ord  order.Order[A]
	step discrete.Discrete[A]
	done bool
	val  A
}

// Iterator returns a fresh cursor positioned on From.
func (r Range[A]) Iterator(ord order.Order[A], d discrete.Discrete[A]) *Iterator[A] {
	return &Iterator[A]{cur: r.from, to: r.to, ord: ord, step: d}
}

// Take yields the next element, or ErrExhausted.
func (it *Iterator[A]) Take() (A, error) {
	if it.done {
		var zero A
		return zero, ErrExhausted
	}
	v := it.cur
	switch {
	case it.ord.Eqv(v, it.to):
		it.done = true
	case it.ord.Lteqv(v, it.to):
		it.cur = it.step.Succ(it.cur)
	default:
		it.cur = it.step.Pred(it.cur)
	}
	return v, nil
}

// Next advances the cursor and reports whether Value holds an
// element.
func (it *Iterator[A]) Next() bool {
	v, err := it.Take()
	if err != nil {
		return false
	}
	it.val = v
	return true
}

// Value returns the element the last successful Next landed on.
func (it *Iterator[A]) Value() A { return it.val }

// ToList drains a fresh iterator into a slice, From first. A
// degenerate range lists in descending order.
func (r Range[A]) ToList(ord order.Order[A], d discrete.Discrete[A]) []A {
	var out []A
	iter := r.Iterator(ord, d)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// Foreach applies f to every element of r, walking forward only: it
// steps with Succ for as long as the cursor is <= To. Unlike
// Iterator it has no notion of degenerate ranges; when From > To it
// does nothing, and when To is the domain maximum the wrapping Succ
// keeps the walk from terminating. The divergence from Iterator is
// long-standing behavior that callers rely on, so the two are kept
// as they are.
func (r Range[A]) Foreach(f func(A), ord order.Order[A], d discrete.Discrete[A]) {
	for i := r.from; ord.Lteqv(i, r.to); i = d.Succ(i) {
		f(i)
	}
}

// FoldLeft accumulates f over the elements of r in forward order.
// It walks the way Foreach does, so the same degenerate-range caveat
// applies.
func FoldLeft[A, B any](r Range[A], seed B, f func(B, A) B, ord order.Order[A], d discrete.Discrete[A]) B {
	acc := seed
	r.Foreach(func(a A) { acc = f(acc, a) }, ord, d)
	return acc
}

// FoldRight accumulates f over the elements of r in reverse order,
// by running FoldLeft in the mirror algebra: reversed endpoints, the
// dual order and inverted stepping. The forward walk then moves from
// To down to From, producing f(a1, f(a2, ... f(an, seed))) for the
// forward-order elements a1..an.
func FoldRight[A, B any](r Range[A], seed B, f func(A, B) B, ord order.Order[A], d discrete.Discrete[A]) B {
	return FoldLeft(r.Reverse(), seed, func(b B, a A) B { return f(a, b) }, order.Reverse(ord), d.Inverse())
}
