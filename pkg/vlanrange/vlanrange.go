package vlanrange

import (
	"fmt"

	"github.com/henderiw/drange/pkg/drange"
	"github.com/henderiw/drange/pkg/rangetable"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	// VLANUntagged is the untagged VLAN.
	VLANUntagged = 0
	// VLANDefault is the default VLAN.
	VLANDefault = 1
	// VLANReserved is reserved by the standard.
	VLANReserved = 4095
)

type VLANRange interface {
	Get(id int64) (labels.Set, error)
	Claim(id int64, d labels.Set) error
	ClaimDynamic(d labels.Set) (int64, error)
	ClaimRange(from, to int64, d labels.Set) error
	Release(id int64) error
	Update(id int64, d labels.Set) error

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)
	FreeRanges() []drange.Range[int64]

	GetAll() map[int64]labels.Set
	GetByLabel(selector labels.Selector) map[int64]labels.Set
}

var initEntries = map[int64]labels.Set{
	VLANUntagged: {"type": "untagged", "status": "reserved"},
	VLANDefault:  {"type": "default", "status": "reserved"},
	VLANReserved: {"type": "reserved", "status": "reserved"},
}

func New() (VLANRange, error) {
	t, err := rangetable.New(
		drange.RangeFrom[int64](0, 4095),
		initEntries,
		func(id int64) error {
			switch id {
			case VLANUntagged:
				return fmt.Errorf("VLAN %d is the untagged VLAN, cannot be claimed", id)
			case VLANDefault:
				return fmt.Errorf("VLAN %d is the default VLAN, cannot be claimed", id)
			case VLANReserved:
				return fmt.Errorf("VLAN %d is reserved, cannot be claimed", id)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &vlanRange{table: t}, nil
}

type vlanRange struct {
	table rangetable.Table
}

func (r *vlanRange) Get(id int64) (labels.Set, error) {
	return r.table.Get(id)
}

func (r *vlanRange) Claim(id int64, d labels.Set) error {
	return r.table.Claim(id, d)
}

func (r *vlanRange) ClaimDynamic(d labels.Set) (int64, error) {
	return r.table.ClaimDynamic(d)
}

func (r *vlanRange) ClaimRange(from, to int64, d labels.Set) error {
	return r.table.ClaimRange(from, to, d)
}

func (r *vlanRange) Release(id int64) error {
	return r.table.Release(id)
}

func (r *vlanRange) Update(id int64, d labels.Set) error {
	return r.table.Update(id, d)
}

func (r *vlanRange) Count() int {
	return r.table.Count()
}

func (r *vlanRange) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *vlanRange) IsFree(id int64) bool {
	return r.table.IsFree(id)
}

func (r *vlanRange) FindFree() (int64, error) {
	return r.table.FindFree()
}

func (r *vlanRange) FreeRanges() []drange.Range[int64] {
	return r.table.FreeRanges()
}

func (r *vlanRange) GetAll() map[int64]labels.Set {
	return r.table.GetAll()
}

func (r *vlanRange) GetByLabel(selector labels.Selector) map[int64]labels.Set {
	return r.table.GetByLabel(selector)
}
