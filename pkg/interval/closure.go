package interval

import (
	"fmt"
	"strings"
)

// Closure tells which bound of a half-open range is included.
type Closure int

const (
	// LeftClosed ranges include their left bound: [left, right).
	LeftClosed Closure = iota
	// RightClosed ranges include their right bound: (left, right].
	RightClosed
)

func (c Closure) String() string {
	switch c {
	case LeftClosed:
		return "left"
	case RightClosed:
		return "right"
	}
	return fmt.Sprintf("Closure(%d)", int(c))
}

// ParseClosure accepts "left" or "right" (case insensitive).
func ParseClosure(s string) (Closure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left", "leftclosed", "left-closed":
		return LeftClosed, nil
	case "right", "rightclosed", "right-closed":
		return RightClosed, nil
	}
	return LeftClosed, fmt.Errorf("unknown closure %q, expected left or right", s)
}

func (c Closure) valid() bool {
	return c == LeftClosed || c == RightClosed
}

// Bounds converts closed bounds as stored in an Index back into the
// half-open bounds declared with closure c.
func (c Closure) Bounds(left, right int64) (from, to int64) {
	if c == RightClosed {
		return left - 1, right
	}
	return left, right + 1
}

// normalize returns a copy of r whose bounds are both inclusive.
// [l, r) becomes [l, r-1] and (l, r] becomes [l+1, r].
func normalize[T any](c Closure, r *Range[T]) *Range[T] {
	n := &Range[T]{
		left:  r.left,
		right: r.right,
		value: r.value,
	}
	if c == RightClosed {
		n.left++
	} else {
		n.right--
	}
	return n
}

func normalizeAll[T any](c Closure, ranges []*Range[T]) []*Range[T] {
	out := make([]*Range[T], 0, len(ranges))
	for _, r := range ranges {
		out = append(out, normalize(c, r))
	}
	return out
}
