package interval

import (
	"fmt"
	"sort"
)

// Index is a static balanced binary tree of non-overlapping ranges. It is not
// a general interval tree: overlapping ranges are rejected and a lookup
// follows a single path from the root.
//
// An Index has no mutating methods once built and is safe for concurrent use.
type Index[T any] struct {
	root    *Range[T]
	closure Closure
	size    int
	height  int
}

// NewLeftClosed builds an Index treating every range as [left, right).
func NewLeftClosed[T any](ranges []*Range[T], opts ...Option) (*Index[T], error) {
	return New(ranges, LeftClosed, opts...)
}

// New builds an Index from ranges. The ranges must not intersect, touching
// bounds are fine. The input ranges are not modified.
func New[T any](ranges []*Range[T], closure Closure, opts ...Option) (*Index[T], error) {
	o := newOptions(opts)
	if !closure.valid() {
		return nil, fmt.Errorf("unsupported closure %s", closure)
	}
	if err := validate(ranges); err != nil {
		o.log.Error(err, "intersecting ranges are not allowed", "closure", closure, "ranges", len(ranges))
		return nil, err
	}

	b := &builder[T]{parallelThreshold: o.parallelThreshold}
	root := b.build(normalizeAll(closure, ranges))

	r := &Index[T]{
		root:    root,
		closure: closure,
		size:    len(ranges),
		height:  root.height(),
	}
	o.log.V(1).Info("built range index", "closure", closure, "size", r.size, "height", r.height)
	return r, nil
}

// validate checks that no two ranges intersect or are duplicates. The ranges
// are sorted by their lower bound first so that comparing neighbours is
// enough.
func validate[T any](ranges []*Range[T]) error {
	sorted := make([]*Range[T], 0, len(ranges))
	for i, r := range ranges {
		if r == nil {
			return fmt.Errorf("%w: range at index %d is nil", ErrInvalidRange, i)
		}
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].left < sorted[j].left
	})

	for i := 0; i < len(sorted)-1; i++ {
		cmp, err := sorted[i].Compare(sorted[i+1])
		if err != nil {
			return err
		}
		if cmp == 0 {
			return fmt.Errorf("%w: duplicate range %s", ErrIntersectingRange, sorted[i])
		}
	}
	return nil
}

// Find returns the value of the range covering point.
func (r *Index[T]) Find(point int64) (T, error) {
	var v T
	if r.root == nil {
		return v, notFound(point)
	}
	n, err := r.root.find(point)
	if err != nil {
		return v, err
	}
	return n.value, nil
}

// Has reports whether point is covered by any range.
func (r *Index[T]) Has(point int64) bool {
	if r.root == nil {
		return false
	}
	_, err := r.root.find(point)
	return err == nil
}

// Root returns the root node, nil when the Index is empty.
func (r *Index[T]) Root() *Range[T] { return r.root }

func (r *Index[T]) Closure() Closure { return r.closure }

func (r *Index[T]) IsLeftClosed() bool { return r.closure == LeftClosed }

func (r *Index[T]) IsRightClosed() bool { return r.closure == RightClosed }

// Size returns the number of stored ranges.
func (r *Index[T]) Size() int { return r.size }

// Height returns the number of nodes on the longest root to leaf path.
func (r *Index[T]) Height() int { return r.height }

// Bounds returns the bounds of a stored node as declared by the caller.
func (r *Index[T]) Bounds(n *Range[T]) (from, to int64) {
	return r.closure.Bounds(n.left, n.right)
}

// GetAll returns the stored nodes in ascending order.
func (r *Index[T]) GetAll() []*Range[T] {
	ranges := make([]*Range[T], 0, r.size)
	iter := r.Iterate()
	for iter.Next() {
		ranges = append(ranges, iter.Range())
	}
	return ranges
}
