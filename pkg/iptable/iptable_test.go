package iptable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangeindex/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go4.org/netipx"
)

func TestNew(t *testing.T) {
	cases := map[string]struct {
		entries         map[string]string
		expectedEntries int
		expectedErr     bool
	}{
		"Normal": {
			entries: map[string]string{
				"10.0.0.10-10.0.0.20": "pool-a",
				"10.0.0.21-10.0.0.30": "pool-b",
				"192.168.0.0/24":      "lan",
				"8.8.8.8":             "dns",
			},
			expectedEntries: 4,
		},
		"Overlap": {
			entries: map[string]string{
				"10.0.0.0/24":         "a",
				"10.0.0.10-10.0.0.20": "b",
			},
			expectedErr: true,
		},
		"IPv6": {
			entries: map[string]string{
				"2001:db8::/64": "v6",
			},
			expectedErr: true,
		},
		"Invalid": {
			entries: map[string]string{
				"10.0.0.300":          "a",
				"10.0.0.20-10.0.0.10": "b",
			},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(tc.entries)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedEntries, r.Count())
		})
	}
}

func TestGet(t *testing.T) {
	r, err := New(map[string]string{
		"10.0.0.10-10.0.0.20": "pool-a",
		"10.0.0.21-10.0.0.30": "pool-b",
		"192.168.0.0/24":      "lan",
		"8.8.8.8":             "dns",
		"255.255.255.255":     "broadcast",
	})
	require.NoError(t, err)

	found := map[string]string{
		"10.0.0.10":          "pool-a",
		"10.0.0.20":          "pool-a",
		"10.0.0.21":          "pool-b",
		"10.0.0.30":          "pool-b",
		"192.168.0.0":        "lan",
		"192.168.0.255":      "lan",
		"8.8.8.8":            "dns",
		"::ffff:192.168.0.7": "lan",
		"255.255.255.255":    "broadcast",
	}
	for addr, want := range found {
		got, err := r.Get(addr)
		assert.NoError(t, err, addr)
		assert.Equal(t, want, got, addr)
		assert.True(t, r.Has(addr), addr)
	}

	for _, addr := range []string{"10.0.0.9", "10.0.0.31", "192.168.1.0", "8.8.8.9", "0.0.0.0"} {
		_, err := r.Get(addr)
		assert.ErrorIs(t, err, interval.ErrPointNotFound, addr)
		assert.False(t, r.Has(addr), addr)
	}

	for _, addr := range []string{"not-an-ip", "2001:db8::1"} {
		_, err := r.Get(addr)
		assert.Error(t, err, addr)
		assert.NotErrorIs(t, err, interval.ErrPointNotFound, addr)
	}
}

func TestRanges(t *testing.T) {
	r, err := New(map[string]int{
		"192.168.0.0/24":      1,
		"10.0.0.10-10.0.0.20": 2,
		"8.8.8.8":             3,
	})
	require.NoError(t, err)

	want := []string{"8.8.8.8-8.8.8.8", "10.0.0.10-10.0.0.20", "192.168.0.0-192.168.0.255"}
	got := []string{}
	for _, ipRange := range r.Ranges() {
		got = append(got, ipRange.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	ipRange, err := netipx.ParseIPRange(want[1])
	require.NoError(t, err)
	assert.Equal(t, ipRange, r.Ranges()[1])
}
