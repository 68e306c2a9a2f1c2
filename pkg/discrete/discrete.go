package discrete

import "time"

// Discrete is the stepping capability of a domain whose values have a
// well-defined next and previous element, with nothing in between.
type Discrete[A any] interface {
	Succ(a A) A
	Pred(a A) A
	// Adj reports whether b directly follows a.
	Adj(a, b A) bool
	// Inverse returns the dual capability with Succ and Pred swapped.
	Inverse() Discrete[A]
}

type discrete[A any] struct {
	succ func(A) A
	pred func(A) A
	eqv  func(A, A) bool
}

// New builds a Discrete from a successor, a predecessor and an
// equality predicate. Adj(a, b) is derived as eqv(succ(a), b).
func New[A any](succ, pred func(A) A, eqv func(A, A) bool) Discrete[A] {
	return discrete[A]{succ: succ, pred: pred, eqv: eqv}
}

func (d discrete[A]) Succ(a A) A { return d.succ(a) }

func (d discrete[A]) Pred(a A) A { return d.pred(a) }

func (d discrete[A]) Adj(a, b A) bool { return d.eqv(d.succ(a), b) }

func (d discrete[A]) Inverse() Discrete[A] {
	return discrete[A]{succ: d.pred, pred: d.succ, eqv: d.eqv}
}

// Integer matches the built-in integer kinds, rune and byte included.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers returns unit stepping for any integer kind. Succ on the
// domain maximum wraps around, as the underlying arithmetic does.
func Integers[A Integer]() Discrete[A] {
	return New(
		func(a A) A { return a + 1 },
		func(a A) A { return a - 1 },
		func(a, b A) bool { return a == b },
	)
}

// Dates returns calendar-day stepping for time.Time values. Values
// are expected to share a location and intra-day offset; Adj compares
// instants exactly.
func Dates() Discrete[time.Time] {
	return New(
		func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
		func(t time.Time) time.Time { return t.AddDate(0, 0, -1) },
		time.Time.Equal,
	)
}
