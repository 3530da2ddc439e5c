package rangetable

import (
	"errors"
	"fmt"

	"github.com/henderiw/rangeindex/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

// RangeTable maps points to the labels of the range covering them.
type RangeTable interface {
	Get(point int64) (labels.Set, error)
	Has(point int64) bool
	Count() int
	Closure() interval.Closure

	GetAll() map[string]labels.Set
	GetByLabel(selector labels.Selector) map[string]labels.Set
}

// New builds a RangeTable from entries keyed by "from-to" ranges, declared
// with the given closure. All invalid keys are reported together.
func New(entries map[string]labels.Set, closure interval.Closure, opts ...interval.Option) (RangeTable, error) {
	ranges := make([]*interval.Range[labels.Set], 0, len(entries))

	var errm error
	for s, d := range entries {
		r, err := interval.ParseRange(s, d)
		if err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		ranges = append(ranges, r)
	}
	if errm != nil {
		return nil, errm
	}

	idx, err := interval.New(ranges, closure, opts...)
	if err != nil {
		return nil, err
	}
	return &rangeTable{index: idx}, nil
}

type rangeTable struct {
	index *interval.Index[labels.Set]
}

func (r *rangeTable) Get(point int64) (labels.Set, error) {
	return r.index.Find(point)
}

func (r *rangeTable) Has(point int64) bool {
	return r.index.Has(point)
}

func (r *rangeTable) Count() int {
	return r.index.Size()
}

func (r *rangeTable) Closure() interval.Closure {
	return r.index.Closure()
}

func (r *rangeTable) GetAll() map[string]labels.Set {
	return r.filter(labels.Everything())
}

func (r *rangeTable) GetByLabel(selector labels.Selector) map[string]labels.Set {
	return r.filter(selector)
}

func (r *rangeTable) filter(selector labels.Selector) map[string]labels.Set {
	entries := map[string]labels.Set{}

	iter := r.index.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value()) {
			entries[r.key(iter.Range())] = iter.Value()
		}
	}
	return entries
}

// key renders a stored range with the bounds it was declared with.
func (r *rangeTable) key(n *interval.Range[labels.Set]) string {
	from, to := r.index.Bounds(n)
	return fmt.Sprintf("%d-%d", from, to)
}
