package interval

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

type builder[T any] struct {
	parallelThreshold int
}

// build balances normalized, validated ranges and returns the subtree root.
// The range covering the median endpoint becomes the root, ranges entirely
// below it go left and ranges entirely above it go right.
func (b *builder[T]) build(ranges []*Range[T]) *Range[T] {
	if len(ranges) == 0 {
		return nil
	}
	median := medianEndpoint(ranges)

	var root *Range[T]
	var left, right []*Range[T]
	for _, r := range ranges {
		switch {
		case root == nil && r.covers(median):
			root = r
		case r.right < median:
			left = append(left, r)
		case r.left > median:
			right = append(right, r)
		}
	}

	if b.parallel(len(left), len(right)) {
		var g errgroup.Group
		g.Go(func() error {
			root.leftChild = b.build(left)
			return nil
		})
		root.rightChild = b.build(right)
		// build does not fail, Wait only joins the goroutine
		_ = g.Wait()
		return root
	}
	root.leftChild = b.build(left)
	root.rightChild = b.build(right)
	return root
}

func (b *builder[T]) parallel(left, right int) bool {
	return b.parallelThreshold > 0 &&
		left >= b.parallelThreshold &&
		right >= b.parallelThreshold
}

// medianEndpoint returns the element at position size/2 of the sorted,
// distinct endpoints of ranges.
func medianEndpoint[T any](ranges []*Range[T]) int64 {
	endpoints := make([]int64, 0, 2*len(ranges))
	for _, r := range ranges {
		endpoints = append(endpoints, r.left, r.right)
	}
	slices.Sort(endpoints)
	endpoints = slices.Compact(endpoints)
	return endpoints[len(endpoints)/2]
}
