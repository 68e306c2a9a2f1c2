package rangetable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/drange/pkg/discrete"
	"github.com/henderiw/drange/pkg/drange"
	"github.com/henderiw/drange/pkg/order"
	"k8s.io/apimachinery/pkg/labels"
)

// Table tracks labeled claims over a span of discrete ids. Free
// space is kept as a sorted, minimal list of ranges: claims carve
// ids out of it, releases merge them back.
type Table interface {
	Get(id int64) (labels.Set, error)
	Claim(id int64, d labels.Set) error
	ClaimDynamic(d labels.Set) (int64, error)
	ClaimRange(from, to int64, d labels.Set) error
	Release(id int64) error
	ReleaseRange(from, to int64) error
	Update(id int64, d labels.Set) error

	Iterate() *Iterator

	Count() int
	Has(id int64) bool
	IsFree(id int64) bool
	FindFree() (int64, error)
	FreeRanges() []drange.Range[int64]

	GetAll() map[int64]labels.Set
	GetByLabel(selector labels.Selector) map[int64]labels.Set
}

type ValidationFn func(id int64) error

// New returns a Table over the given span. initEntries are claimed
// up front and bypass the validation function.
func New(span drange.Range[int64], initEntries map[int64]labels.Set, v ValidationFn) (Table, error) {
	ord := order.Natural[int64]()
	if ord.Gt(span.From(), span.To()) {
		return nil, fmt.Errorf("invalid span %s", span)
	}
	r := &table{
		m:          new(sync.RWMutex),
		span:       span,
		free:       []drange.Range[int64]{span},
		entries:    map[int64]labels.Set{},
		validateFn: v,
		ord:        ord,
		step:       discrete.Integers[int64](),
	}

	var errm error
	for id, d := range initEntries {
		if err := r.claim(id, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

type table struct {
	m          *sync.RWMutex
	span       drange.Range[int64]
	free       []drange.Range[int64]
	entries    map[int64]labels.Set
	validateFn ValidationFn
	ord        order.Order[int64]
	step       discrete.Discrete[int64]
}

func (r *table) validate(id int64, init bool) error {
	if !r.span.Contains(id, r.ord) {
		return fmt.Errorf("id %d is outside the span %s", id, r.span)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table) Get(id int64) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	if err := r.validate(id, false); err != nil {
		return nil, err
	}
	d, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *table) Claim(id int64, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.claim(id, d, false)
}

func (r *table) claim(id int64, d labels.Set, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if err := r.carve(drange.RangeFrom(id, id)); err != nil {
		return fmt.Errorf("claim failed id %d already claimed", id)
	}
	r.entries[id] = d
	return nil
}

func (r *table) ClaimDynamic(d labels.Set) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if len(r.free) == 0 {
		return 0, fmt.Errorf("no free entry found")
	}
	id := r.free[0].From()
	if err := r.claim(id, d, false); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *table) ClaimRange(from, to int64, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	rng := drange.RangeFrom(from, to)
	if r.ord.Gt(from, to) {
		return fmt.Errorf("invalid range %s", rng)
	}
	for _, id := range []int64{from, to} {
		if err := r.validate(id, false); err != nil {
			return err
		}
	}
	if err := r.carve(rng); err != nil {
		return fmt.Errorf("claim failed range %s not entirely free", rng)
	}
	rng.Foreach(func(id int64) { r.entries[id] = d }, r.ord, r.step)
	return nil
}

func (r *table) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.release(id)
}

func (r *table) release(id int64) error {
	if err := r.validate(id, true); err != nil {
		return err
	}
	if _, ok := r.entries[id]; !ok {
		// releasing a free id is a noop
		return nil
	}
	delete(r.entries, id)
	r.giveBack(drange.RangeFrom(id, id))
	return nil
}

func (r *table) ReleaseRange(from, to int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	rng := drange.RangeFrom(from, to)
	if r.ord.Gt(from, to) {
		return fmt.Errorf("invalid range %s", rng)
	}
	var errm error
	rng.Foreach(func(id int64) {
		if err := r.release(id); err != nil {
			errm = errors.Join(errm, err)
		}
	}, r.ord, r.step)
	return errm
}

func (r *table) Update(id int64, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("update failed id %d not claimed", id)
	}
	r.entries[id] = d
	return nil
}

// carve removes rng from the free list. Since the free list is
// minimal and sorted, a fully free rng sits inside exactly one free
// range.
func (r *table) carve(rng drange.Range[int64]) error {
	for i, fr := range r.free {
		if fr.ContainsRange(rng, r.ord) {
			rem := fr.Difference(rng, r.ord, r.step)
			r.free = append(r.free[:i], append(rem, r.free[i+1:]...)...)
			return nil
		}
	}
	return fmt.Errorf("range %s not free", rng)
}

// giveBack returns rng to the free list and re-canonicalizes it,
// merging neighbors that touch.
func (r *table) giveBack(rng drange.Range[int64]) {
	free := append(r.free, rng)
	sort.Slice(free, func(i, j int) bool { return free[i].From() < free[j].From() })
	out := make([]drange.Range[int64], 1, len(free))
	out[0] = free[0]
	for _, fr := range free[1:] {
		prev := out[len(out)-1]
		merged := prev.Union(fr, r.ord, r.step)
		out[len(out)-1] = merged[0]
		if len(merged) == 2 {
			out = append(out, merged[1])
		}
	}
	r.free = out
}

func (r *table) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	keys := make([]int64, 0, len(r.entries))
	entries := make(map[int64]labels.Set, len(r.entries))
	for id, d := range r.entries {
		keys = append(keys, id)
		entries[id] = d
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return &Iterator{current: -1, keys: keys, entries: entries}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[id]
	return ok
}

func (r *table) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, fr := range r.free {
		if fr.Contains(id, r.ord) {
			return true
		}
	}
	return false
}

func (r *table) FindFree() (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	if len(r.free) == 0 {
		return 0, fmt.Errorf("no free entry found")
	}
	return r.free[0].From(), nil
}

func (r *table) FreeRanges() []drange.Range[int64] {
	r.m.RLock()
	defer r.m.RUnlock()

	free := make([]drange.Range[int64], len(r.free))
	copy(free, r.free)
	return free
}

func (r *table) GetAll() map[int64]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[int64]labels.Set, len(r.entries))
	for id, d := range r.entries {
		entries[id] = d
	}
	return entries
}

func (r *table) GetByLabel(selector labels.Selector) map[int64]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := map[int64]labels.Set{}
	for id, d := range r.entries {
		if selector.Matches(d) {
			entries[id] = d
		}
	}
	return entries
}
