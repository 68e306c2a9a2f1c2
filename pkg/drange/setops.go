package drange

import (
	"github.com/henderiw/drange/pkg/discrete"
	"github.com/henderiw/drange/pkg/order"
)

// Difference returns what is left of r after removing other: no
// ranges when other covers r, one when other clips a single end or
// misses r entirely, two when other cuts the interior. Remainders
// come back in ascending position. Only comparisons and Succ/Pred
// are used, so any discrete domain works.
func (r Range[A]) Difference(other Range[A], ord order.Order[A], d discrete.Discrete[A]) []Range[A] {
	if ord.Lteqv(other.from, r.from) {
		switch {
		case ord.Lt(other.to, r.from):
			// other lies entirely before r.
			return []Range[A]{r}
		case ord.Gteqv(other.to, r.to):
			// other covers all of r.
			return nil
		default:
			// other clips the lower end of r.
			return []Range[A]{{from: d.Succ(other.to), to: r.to}}
		}
	}
	if ord.Gt(other.from, r.to) {
		// other lies entirely after r.
		return []Range[A]{r}
	}
	// other starts inside r.
	lower := Range[A]{from: r.from, to: d.Pred(other.from)}
	if ord.Lt(other.to, r.to) {
		return []Range[A]{lower, {from: d.Succ(other.to), to: r.to}}
	}
	return []Range[A]{lower}
}

// Union joins r and other into one range when they overlap or when
// the facing endpoints are adjacent (no gap between them), otherwise
// it returns both unchanged, ordered by starting endpoint. The
// result is never empty.
func (r Range[A]) Union(other Range[A], ord order.Order[A], d discrete.Discrete[A]) []Range[A] {
	l, h := r, other
	if ord.Gt(l.from, h.from) {
		l, h = h, l
	}
	if ord.Gteqv(l.to, h.from) || d.Adj(l.to, h.from) {
		return []Range[A]{{from: l.from, to: ord.Max(l.to, h.to)}}
	}
	return []Range[A]{l, h}
}

// Intersect returns the overlap of r and other, if any.
func (r Range[A]) Intersect(other Range[A], ord order.Order[A]) (Range[A], bool) {
	from := ord.Max(r.from, other.from)
	to := ord.Min(r.to, other.to)
	if ord.Lteqv(from, to) {
		return Range[A]{from: from, to: to}, true
	}
	return Range[A]{}, false
}
