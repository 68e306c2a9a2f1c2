package rangetable

import "k8s.io/apimachinery/pkg/labels"

// Iterator walks the claimed entries of a Table in id order. It is a
// snapshot: claims and releases made after Iterate are not seen.
type Iterator struct {
	current int
	keys    []int64
	entries map[int64]labels.Set
}

func (r *Iterator) Value() labels.Set {
	return r.entries[r.keys[r.current]]
}

func (r *Iterator) ID() int64 {
	return r.keys[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}

// IsConsecutive reports whether the current id directly follows the
// previous one.
func (r *Iterator) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	return r.keys[r.current-1] == r.keys[r.current]-1
}
