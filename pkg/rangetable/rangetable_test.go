package rangetable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangeindex/pkg/interval"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

var entries = map[string]labels.Set{
	"1-10":  map[string]string{"name": "a", "tier": "gold"},
	"10-20": map[string]string{"name": "b", "tier": "silver"},
	"20-30": map[string]string{"name": "c", "tier": "gold"},
	"-5--1": map[string]string{"name": "n"},
}

func TestNew(t *testing.T) {
	cases := map[string]struct {
		entries         map[string]labels.Set
		closure         interval.Closure
		expectedEntries int
		expectedErr     bool
	}{
		"Normal": {
			entries:         entries,
			expectedEntries: 4,
		},
		"RightClosed": {
			entries:         entries,
			closure:         interval.RightClosed,
			expectedEntries: 4,
		},
		"Empty": {
			entries:         nil,
			expectedEntries: 0,
		},
		"InvalidKeys": {
			entries: map[string]labels.Set{
				"x-10": {},
				"10":   {},
				"5-1":  {},
			},
			expectedErr: true,
		},
		"Intersecting": {
			entries: map[string]labels.Set{
				"1-10": {},
				"5-15": {},
			},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(tc.entries, tc.closure)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedEntries, r.Count())
			assert.Equal(t, tc.closure, r.Closure())
		})
	}
}

func TestGet(t *testing.T) {
	cases := map[string]struct {
		closure       interval.Closure
		expectedNames map[int64]string
		notFound      []int64
	}{
		"LeftClosed": {
			closure: interval.LeftClosed,
			expectedNames: map[int64]string{
				-5: "n", -2: "n", 1: "a", 9: "a", 10: "b", 20: "c", 29: "c",
			},
			notFound: []int64{-6, -1, 0, 30},
		},
		"RightClosed": {
			closure: interval.RightClosed,
			expectedNames: map[int64]string{
				-4: "n", -1: "n", 2: "a", 10: "a", 11: "b", 30: "c",
			},
			notFound: []int64{-5, 0, 1, 31},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(entries, tc.closure)
			assert.NoError(t, err)

			for point, want := range tc.expectedNames {
				d, err := r.Get(point)
				assert.NoError(t, err)
				assert.Equal(t, want, d.Get("name"))
				assert.True(t, r.Has(point))
			}
			for _, point := range tc.notFound {
				_, err := r.Get(point)
				assert.Error(t, err)
				assert.False(t, r.Has(point))
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	for _, closure := range []interval.Closure{interval.LeftClosed, interval.RightClosed} {
		r, err := New(entries, closure)
		assert.NoError(t, err)
		if diff := cmp.Diff(entries, r.GetAll()); diff != "" {
			t.Errorf("%s: -want, +got:\n%s", closure, diff)
		}
	}
}

func TestGetByLabel(t *testing.T) {
	cases := map[string]struct {
		selector string
		expected []string
	}{
		"Gold":      {selector: "tier=gold", expected: []string{"1-10", "20-30"}},
		"NotGold":   {selector: "tier!=gold", expected: []string{"10-20", "-5--1"}},
		"HasTier":   {selector: "tier", expected: []string{"1-10", "10-20", "20-30"}},
		"NoneMatch": {selector: "tier=bronze", expected: []string{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(entries, interval.LeftClosed)
			assert.NoError(t, err)

			selector, err := labels.Parse(tc.selector)
			assert.NoError(t, err)

			got := r.GetByLabel(selector)
			assert.Equal(t, len(tc.expected), len(got))
			for _, key := range tc.expected {
				if diff := cmp.Diff(entries[key], got[key]); diff != "" {
					t.Errorf("%s: -want, +got:\n%s", key, diff)
				}
			}
		})
	}
}
