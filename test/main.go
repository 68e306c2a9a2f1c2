package main

import (
	"fmt"

	"github.com/henderiw/drange/pkg/discrete"
	"github.com/henderiw/drange/pkg/drange"
	"github.com/henderiw/drange/pkg/iprange"
	"github.com/henderiw/drange/pkg/order"
	"github.com/henderiw/drange/pkg/rangetable"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

func main() {
	ord := order.Natural[int]()
	step := discrete.Integers[int]()

	a := drange.RangeFrom(1, 10)
	b := drange.RangeFrom(4, 6)
	fmt.Println("difference", a, "-", b, "=", a.Difference(b, ord, step))
	fmt.Println("union", drange.RangeFrom(1, 3).Union(drange.RangeFrom(4, 6), ord, step))
	if overlap, ok := a.Intersect(drange.RangeFrom(5, 15), ord); ok {
		fmt.Println("intersect", overlap)
	}
	fmt.Println("forward", drange.RangeFrom(1, 5).ToList(ord, step))
	fmt.Println("backward", drange.RangeFrom(5, 1).ToList(ord, step))
	fmt.Println("sum", drange.FoldLeft(drange.RangeFrom(1, 4), 0, func(acc, i int) int { return acc + i }, ord, step))

	tbl, err := rangetable.New(drange.RangeFrom[int64](0, 99), nil, nil)
	if err != nil {
		panic(err)
	}
	if err := tbl.ClaimRange(10, 19, labels.Set{"pool": "a"}); err != nil {
		panic(err)
	}
	if _, err := tbl.ClaimDynamic(labels.Set{"pool": "b"}); err != nil {
		panic(err)
	}
	fmt.Println("claimed", tbl.Count(), "free", tbl.FreeRanges())

	iter := tbl.Iterate()
	for iter.Next() {
		fmt.Println("entry", iter.ID(), iter.Value())
	}

	ipr := iprange.FromIPRange(netipx.MustParseIPRange("10.0.0.0-10.0.1.127"))
	routes, err := iprange.Routes(ipr, map[string]string{"tenant": "a"})
	if err != nil {
		panic(err)
	}
	for _, route := range routes {
		fmt.Println("route", route)
	}
}
