package rangetable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/drange/pkg/drange"
	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/labels"
)

var initEntries = map[int64]labels.Set{
	0:   {"status": "reserved"},
	1:   {"status": "reserved"},
	999: {"status": "reserved"},
}

func TestNew(t *testing.T) {
	cases := map[string]struct {
		span            drange.Range[int64]
		initEntries     map[int64]labels.Set
		validation      ValidationFn
		expectedEntries int
		expectedErr     bool
	}{
		"NewWithoutInitEntries": {
			span:            drange.RangeFrom[int64](0, 999),
			initEntries:     nil,
			expectedEntries: 0,
		},
		"NewWithInitEntries": {
			span:            drange.RangeFrom[int64](0, 999),
			initEntries:     initEntries,
			validation:      func(id int64) error { return nil },
			expectedEntries: 3,
		},
		"NewErrorOutsideSpan": {
			span:        drange.RangeFrom[int64](0, 99),
			initEntries: initEntries,
			expectedErr: true,
		},
		"NewInitBypassesValidation": {
			span:        drange.RangeFrom[int64](0, 999),
			initEntries: initEntries,
			validation: func(id int64) error {
				return errors.New("validation")
			},
			expectedEntries: 3,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(tc.span, tc.initEntries, tc.validation)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestClaim(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 999), initEntries, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.Claim(10, labels.Set{"a": "b"}))
	assert.Error(t, r.Claim(10, labels.Set{"a": "c"}), "double claim")
	assert.Error(t, r.Claim(1000, nil), "outside span")
	assert.True(t, r.Has(10))
	assert.False(t, r.IsFree(10))
	assert.True(t, r.IsFree(11))
	assert.Equal(t, 4, r.Count())

	d, err := r.Get(10)
	assert.NoError(t, err)
	assert.Equal(t, labels.Set{"a": "b"}, d)

	_, err = r.Get(11)
	assert.Error(t, err)
}

func TestClaimValidation(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 999), nil, func(id int64) error {
		if id == 13 {
			return errors.New("reserved")
		}
		return nil
	})
	assert.NoError(t, err)

	assert.Error(t, r.Claim(13, nil))
	assert.NoError(t, r.Claim(14, nil))
}

func TestClaimDynamic(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 2), nil, nil)
	assert.NoError(t, err)

	for want := int64(0); want < 3; want++ {
		id, err := r.ClaimDynamic(labels.Set{"n": "x"})
		assert.NoError(t, err)
		assert.Equal(t, want, id)
	}
	_, err = r.ClaimDynamic(nil)
	assert.Error(t, err, "span full")
}

func TestClaimRange(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 99), nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.ClaimRange(10, 19, labels.Set{"pool": "a"}))
	assert.Error(t, r.ClaimRange(15, 25, nil), "partially claimed")
	assert.Error(t, r.ClaimRange(20, 10, nil), "degenerate")
	assert.Equal(t, 10, r.Count())

	expected := []drange.Range[int64]{
		drange.RangeFrom[int64](0, 9),
		drange.RangeFrom[int64](20, 99),
	}
	if diff := cmp.Diff(expected, r.FreeRanges(), cmp.Comparer(func(a, b drange.Range[int64]) bool {
		return a.From() == b.From() && a.To() == b.To()
	})); diff != "" {
		t.Errorf("free ranges: -want +got:\n%s", diff)
	}
}

func TestReleaseMergesFreeSpace(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 9), nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.ClaimRange(0, 9, nil))
	assert.Empty(t, r.FreeRanges())

	assert.NoError(t, r.Release(4))
	assert.NoError(t, r.Release(6))
	assert.Len(t, r.FreeRanges(), 2)

	// releasing 5 bridges the two free ranges
	assert.NoError(t, r.Release(5))
	free := r.FreeRanges()
	assert.Len(t, free, 1)
	assert.Equal(t, int64(4), free[0].From())
	assert.Equal(t, int64(6), free[0].To())

	assert.NoError(t, r.ReleaseRange(0, 9))
	free = r.FreeRanges()
	assert.Len(t, free, 1)
	assert.Equal(t, int64(0), free[0].From())
	assert.Equal(t, int64(9), free[0].To())
	assert.Equal(t, 0, r.Count())

	// releasing free ids again is a noop
	assert.NoError(t, r.Release(5))
	assert.Len(t, r.FreeRanges(), 1)
}

func TestUpdate(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 9), nil, nil)
	assert.NoError(t, err)

	assert.Error(t, r.Update(3, labels.Set{"a": "b"}), "not claimed")
	assert.NoError(t, r.Claim(3, labels.Set{"a": "b"}))
	assert.NoError(t, r.Update(3, labels.Set{"a": "c"}))

	d, err := r.Get(3)
	assert.NoError(t, err)
	assert.Equal(t, labels.Set{"a": "c"}, d)
}

func TestGetByLabel(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 99), nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.Claim(1, labels.Set{"tenant": "a"}))
	assert.NoError(t, r.Claim(2, labels.Set{"tenant": "b"}))
	assert.NoError(t, r.Claim(3, labels.Set{"tenant": "a"}))

	entries := r.GetByLabel(labels.SelectorFromSet(labels.Set{"tenant": "a"}))
	assert.Len(t, entries, 2)
	assert.Contains(t, entries, int64(1))
	assert.Contains(t, entries, int64(3))
}

func TestIterate(t *testing.T) {
	r, err := New(drange.RangeFrom[int64](0, 99), nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.ClaimRange(5, 7, labels.Set{"pool": "a"}))
	assert.NoError(t, r.Claim(20, labels.Set{"pool": "b"}))

	var ids []int64
	var consecutive []bool
	iter := r.Iterate()
	for iter.Next() {
		ids = append(ids, iter.ID())
		consecutive = append(consecutive, iter.IsConsecutive())
	}
	assert.Equal(t, []int64{5, 6, 7, 20}, ids)
	assert.Equal(t, []bool{false, true, true, false}, consecutive)
}
