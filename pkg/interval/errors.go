package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when a range does not satisfy left < right.
	ErrInvalidRange = errors.New("invalid range")
	// ErrIntersectingRange is returned when two ranges overlap or are duplicates.
	ErrIntersectingRange = errors.New("intersecting range")
	// ErrPointNotFound is matched by every PointNotFoundError.
	ErrPointNotFound = errors.New("point not found")
)

// PointNotFoundError reports a point that is not covered by any stored range.
type PointNotFoundError struct {
	Point int64
}

func (e *PointNotFoundError) Error() string {
	return fmt.Sprintf("point %d not found", e.Point)
}

func (e *PointNotFoundError) Is(target error) bool {
	return target == ErrPointNotFound
}

func notFound(point int64) error {
	return &PointNotFoundError{Point: point}
}
