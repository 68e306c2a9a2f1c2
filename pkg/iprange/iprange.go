package iprange

import (
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"go4.org/netipx"

	"github.com/henderiw/drange/pkg/discrete"
	"github.com/henderiw/drange/pkg/drange"
	"github.com/henderiw/drange/pkg/order"
)

// Order compares addresses the way netip does: v4 sorts before v6.
func Order() order.Order[netip.Addr] {
	return order.FromCompare(netip.Addr.Compare)
}

// Discrete steps addresses with Next/Prev. Stepping past the edge of
// the address space yields the invalid zero Addr, as netip does.
func Discrete() discrete.Discrete[netip.Addr] {
	return discrete.New(
		netip.Addr.Next,
		netip.Addr.Prev,
		func(a, b netip.Addr) bool { return a == b },
	)
}

// FromIPRange converts a netipx range into a range value.
func FromIPRange(r netipx.IPRange) drange.Range[netip.Addr] {
	return drange.RangeFrom(r.From(), r.To())
}

// ToIPRange converts back to netipx. It fails when the range is
// degenerate or mixes address families, which netipx cannot
// represent.
func ToIPRange(r drange.Range[netip.Addr]) (netipx.IPRange, error) {
	ipr := netipx.IPRangeFrom(r.From(), r.To())
	if !ipr.IsValid() {
		return netipx.IPRange{}, fmt.Errorf("invalid ip range from %s to %s", r.From(), r.To())
	}
	return ipr, nil
}

// Prefixes returns the minimal set of prefixes that exactly covers r.
func Prefixes(r drange.Range[netip.Addr]) ([]netip.Prefix, error) {
	ipr, err := ToIPRange(r)
	if err != nil {
		return nil, err
	}
	return ipr.Prefixes(), nil
}

// Routes returns one route per covering prefix of r, each carrying
// the given labels.
func Routes(r drange.Range[netip.Addr], l map[string]string) (table.Routes, error) {
	prefixes, err := Prefixes(r)
	if err != nil {
		return nil, err
	}
	var routes table.Routes
	for _, p := range prefixes {
		routes = append(routes, table.NewRoute(p, l, map[string]any{}))
	}
	return routes, nil
}
