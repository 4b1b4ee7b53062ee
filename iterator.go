package skiplist

// Iterator is a cursor over the base-level chain. It is either positioned on
// a live element, on the end position (the tail sentinel), or is the zero
// Iterator referencing no node. Iterators compare with ==; two iterators are
// equal exactly when they reference the same node, regardless of the values
// stored there.
//
// An iterator holds no ownership. Erasing its node, or clearing the list,
// invalidates it; the zeroed node makes most later misuse surface as
// ErrOutOfRange or ErrInvalidDereference, but that detection is best-effort
// and not part of the contract.
type Iterator[T any] struct {
	n *node[T]
}

// Next advances to the successor on the base level. Advancing from the end
// position or from a zero iterator fails with ErrOutOfRange.
func (it *Iterator[T]) Next() error {
	n := it.n
	if n == nil || len(n.forward) == 0 || n.forward[0] == nil {
		return ErrOutOfRange
	}
	it.n = n.forward[0]
	return nil
}

// Prev retreats to the predecessor on the base level. It is legal from an
// element or from the end position; retreating before the first element
// fails with ErrOutOfRange.
func (it *Iterator[T]) Prev() error {
	n := it.n
	if n == nil || n.back == nil {
		return ErrOutOfRange
	}
	prev := n.back
	if prev.back == nil {
		// The predecessor is the head sentinel, which is not a position.
		return ErrOutOfRange
	}
	it.n = prev
	return nil
}

// Value returns the element at the iterator's position. Reading through a
// sentinel position or a zero iterator fails with ErrInvalidDereference.
func (it Iterator[T]) Value() (T, error) {
	if it.n == nil || it.n.val == nil {
		var zero T
		return zero, ErrInvalidDereference
	}
	return *it.n.val, nil
}
