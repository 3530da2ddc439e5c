package iptable

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/rangeindex/pkg/interval"
	"go4.org/netipx"
)

// IPTable maps IPv4 addresses to the value of the address range holding them.
type IPTable[T any] interface {
	Get(addr string) (T, error)
	Has(addr string) bool
	Count() int

	Ranges() []netipx.IPRange
}

type entry[T any] struct {
	ipRange netipx.IPRange
	data    T
}

// New builds an IPTable. Keys are address ranges ("10.0.0.10-10.0.0.20"),
// prefixes ("10.0.0.0/24") or single addresses. Ranges must not overlap.
func New[T any](entries map[string]T, opts ...interval.Option) (IPTable[T], error) {
	ranges := make([]*interval.Range[entry[T]], 0, len(entries))

	var errm error
	for s, d := range entries {
		ipRange, err := parseIPRange(s)
		if err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		// the index is half-open, the ip range includes both ends
		r, err := interval.NewRange(ipToInt(ipRange.From()), ipToInt(ipRange.To())+1, entry[T]{
			ipRange: ipRange,
			data:    d,
		})
		if err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		ranges = append(ranges, r)
	}
	if errm != nil {
		return nil, errm
	}

	idx, err := interval.NewLeftClosed(ranges, opts...)
	if err != nil {
		return nil, err
	}
	return &ipTable[T]{index: idx}, nil
}

type ipTable[T any] struct {
	index *interval.Index[entry[T]]
}

func (r *ipTable[T]) Get(addr string) (T, error) {
	var d T
	ip, err := validateIP(addr)
	if err != nil {
		return d, err
	}
	e, err := r.index.Find(ipToInt(ip))
	if err != nil {
		return d, fmt.Errorf("ip address %s: %w", addr, err)
	}
	return e.data, nil
}

func (r *ipTable[T]) Has(addr string) bool {
	ip, err := validateIP(addr)
	if err != nil {
		return false
	}
	return r.index.Has(ipToInt(ip))
}

func (r *ipTable[T]) Count() int {
	return r.index.Size()
}

// Ranges returns the stored address ranges in ascending order.
func (r *ipTable[T]) Ranges() []netipx.IPRange {
	ranges := make([]netipx.IPRange, 0, r.index.Size())
	iter := r.index.Iterate()
	for iter.Next() {
		ranges = append(ranges, iter.Value().ipRange)
	}
	return ranges
}

func parseIPRange(s string) (netipx.IPRange, error) {
	var ipRange netipx.IPRange
	switch {
	case strings.Contains(s, "/"):
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return ipRange, fmt.Errorf("invalid prefix %q: %w", s, err)
		}
		ipRange = netipx.RangeOfPrefix(prefix.Masked())
	case strings.Contains(s, "-"):
		var err error
		ipRange, err = netipx.ParseIPRange(s)
		if err != nil {
			return ipRange, err
		}
	default:
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return ipRange, fmt.Errorf("ip address %s is invalid", s)
		}
		ipRange = netipx.IPRangeFrom(addr, addr)
	}
	if !ipRange.IsValid() {
		return ipRange, fmt.Errorf("ip range %q is invalid", s)
	}
	if !ipRange.From().Is4() {
		return ipRange, fmt.Errorf("ip range %q is not an IPv4 range", s)
	}
	return ipRange, nil
}

func validateIP(addr string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	ip = ip.Unmap()
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("ip address %s is not an IPv4 address", addr)
	}
	return ip, nil
}

func ipToInt(ip netip.Addr) int64 {
	b := ip.As4()
	return int64(binary.BigEndian.Uint32(b[:]))
}
