package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an integer range carrying a payload. It also serves as a node of
// the Index: once an Index is built a range owns its left and right children.
type Range[T any] struct {
	left  int64
	right int64
	value T

	leftChild  *Range[T]
	rightChild *Range[T]
}

// NewRange returns a range from left to right holding value.
func NewRange[T any](left, right int64, value T) (*Range[T], error) {
	if !(left < right) {
		return nil, fmt.Errorf("%w: left %d must be smaller than right %d", ErrInvalidRange, left, right)
	}
	return &Range[T]{
		left:  left,
		right: right,
		value: value,
	}, nil
}

// ParseRange parses a range in the form "from-to", e.g. "1-10" or "-10--5".
func ParseRange[T any](s string, value T) (*Range[T], error) {
	if len(s) < 3 {
		return nil, fmt.Errorf("%w: cannot parse %q", ErrInvalidRange, s)
	}
	// the first byte may be the sign of from
	h := strings.IndexByte(s[1:], '-')
	if h == -1 {
		return nil, fmt.Errorf("%w: no hyphen in range %q", ErrInvalidRange, s)
	}
	h++
	from, to := strings.TrimSpace(s[:h]), strings.TrimSpace(s[h+1:])
	left, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid from %q in range %q", ErrInvalidRange, from, s)
	}
	right, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to %q in range %q", ErrInvalidRange, to, s)
	}
	return NewRange(left, right, value)
}

// Left returns the lower bound of r.
func (r *Range[T]) Left() int64 { return r.left }

// Right returns the upper bound of r.
func (r *Range[T]) Right() int64 { return r.right }

// Value returns the payload of r.
func (r *Range[T]) Value() T { return r.value }

// LeftChild returns the root of the subtree holding the ranges below r.
func (r *Range[T]) LeftChild() *Range[T] { return r.leftChild }

// RightChild returns the root of the subtree holding the ranges above r.
func (r *Range[T]) RightChild() *Range[T] { return r.rightChild }

func (r *Range[T]) String() string {
	return fmt.Sprintf("%d-%d", r.left, r.right)
}

// Contains reports whether n lies strictly between the bounds of r.
func (r *Range[T]) Contains(n int64) bool {
	return r.left < n && n < r.right
}

// IsLowerBoundary reports whether n equals the lower bound of r.
func (r *Range[T]) IsLowerBoundary(n int64) bool {
	return n == r.left
}

// IsUpperBoundary reports whether n equals the upper bound of r.
func (r *Range[T]) IsUpperBoundary(n int64) bool {
	return n == r.right
}

func (r *Range[T]) covers(n int64) bool {
	return r.Contains(n) || r.IsLowerBoundary(n) || r.IsUpperBoundary(n)
}

// Compare returns 0 if r and other have the same bounds, -1 if r lies
// entirely before other and +1 if r lies entirely after other. Touching
// bounds are allowed. Any other overlap returns ErrIntersectingRange.
func (r *Range[T]) Compare(other *Range[T]) (int, error) {
	switch {
	case r.left == other.left && r.right == other.right:
		return 0, nil
	case r.right <= other.left:
		return -1, nil
	case r.left >= other.right:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrIntersectingRange, r, other)
}

// find returns the node in the subtree rooted at r that covers n.
func (r *Range[T]) find(n int64) (*Range[T], error) {
	if r.covers(n) {
		return r, nil
	}
	if n < r.left && r.leftChild != nil {
		return r.leftChild.find(n)
	}
	if n > r.right && r.rightChild != nil {
		return r.rightChild.find(n)
	}
	return nil, notFound(n)
}

// height returns the number of nodes on the longest path from r to a leaf.
func (r *Range[T]) height() int {
	if r == nil {
		return 0
	}
	return 1 + max(r.leftChild.height(), r.rightChild.height())
}
