package interval

// Iterator is a stateful in-order iterator over an Index.
type Iterator[T any] struct {
	current *Range[T]
	next    *Range[T]
	history []*Range[T]
}

// Iterate returns an iterator visiting the stored ranges in ascending order.
func (r *Index[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{
		next:    r.root,
		history: make([]*Range[T], 0, r.height),
	}
}

// Next moves to the next range. It returns false if there is none.
func (iter *Iterator[T]) Next() bool {
	for iter.next != nil {
		iter.history = append(iter.history, iter.next)
		iter.next = iter.next.leftChild
	}
	if len(iter.history) == 0 {
		iter.current = nil
		return false
	}
	iter.current = iter.history[len(iter.history)-1]
	iter.history = iter.history[:len(iter.history)-1]
	iter.next = iter.current.rightChild
	return true
}

// Range returns the current node.
func (iter *Iterator[T]) Range() *Range[T] { return iter.current }

// Value returns the payload of the current node.
func (iter *Iterator[T]) Value() T { return iter.current.value }
