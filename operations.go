package skiplist

// PushFront inserts value. The name mirrors the sequence-container surface;
// the comparison relation, not the call, decides where the element lands.
func (l *SkipList[T]) PushFront(value T) Iterator[T] {
	return l.Insert(value)
}

// PushBack inserts value. See PushFront.
func (l *SkipList[T]) PushBack(value T) Iterator[T] {
	return l.Insert(value)
}

// PopFront removes and returns the smallest element. It fails with
// ErrOutOfRange on an empty container, which is left unchanged.
func (l *SkipList[T]) PopFront() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	value := *l.head.forward[0].val
	if _, err := l.Erase(l.Begin()); err != nil {
		return value, err
	}
	return value, nil
}

// PopBack removes and returns the largest element. It fails with
// ErrOutOfRange on an empty container, which is left unchanged.
func (l *SkipList[T]) PopBack() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	value := *l.tail.back.val
	if _, err := l.Erase(l.RBegin()); err != nil {
		return value, err
	}
	return value, nil
}

// Resize grows the container to count elements by repeated insertion of
// fill, or shrinks it by erasing from position count onward. A negative
// count fails with ErrOutOfRange.
func (l *SkipList[T]) Resize(count int, fill T) error {
	if count < 0 {
		return ErrOutOfRange
	}

	for l.length < count {
		l.Insert(fill)
	}

	if l.length > count {
		it := l.Begin()
		for i := 0; i < count; i++ {
			if err := it.Next(); err != nil {
				return err
			}
		}
		for it != l.End() {
			next, err := l.Erase(it)
			if err != nil {
				return err
			}
			it = next
		}
	}
	return nil
}

// Swap exchanges the complete internal state of the two containers in O(1).
// Iterators keep following their nodes and therefore switch containers.
func (l *SkipList[T]) Swap(other *SkipList[T]) {
	l.less, other.less = other.less, l.less
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.length, other.length = other.length, l.length
	l.src, other.src = other.src, l.src
	l.prob, other.prob = other.prob, l.prob
	l.alloc, other.alloc = other.alloc, l.alloc
	l.stats, other.stats = other.stats, l.stats
}

// Clone returns an independent deep copy built by re-inserting every element
// in order. The copy keeps the comparison, probability and allocation
// strategy but draws its levels from a fresh random source, so the two node
// graphs may differ in shape while agreeing on contents.
func (l *SkipList[T]) Clone() *SkipList[T] {
	out := &SkipList[T]{
		less:  l.less,
		prob:  l.prob,
		src:   newRandomSource(),
		alloc: l.alloc.fork(),
	}
	out.head, out.tail = newSentinels[T]()

	for x := l.head.forward[0]; x != l.tail; x = x.forward[0] {
		out.Insert(*x.val)
	}
	return out
}

// Move transfers ownership of the node graph to a new container and leaves
// the receiver empty but valid: fresh sentinels, length zero, same
// comparison and allocation strategy, a fresh random source.
func (l *SkipList[T]) Move() *SkipList[T] {
	out := &SkipList[T]{
		less:   l.less,
		head:   l.head,
		tail:   l.tail,
		length: l.length,
		src:    l.src,
		prob:   l.prob,
		alloc:  l.alloc,
		stats:  l.stats,
	}

	l.head, l.tail = newSentinels[T]()
	l.length = 0
	l.src = newRandomSource()
	l.alloc = l.alloc.fork()
	l.stats = Stats{}
	return out
}

// Equal reports whether the two containers hold pairwise equivalent elements
// in the same order, under the receiver's comparison relation. Differing
// lengths short-circuit to false without walking either chain.
func (l *SkipList[T]) Equal(other *SkipList[T]) bool {
	if l.length != other.length {
		return false
	}
	a, b := l.head.forward[0], other.head.forward[0]
	for a != l.tail && b != other.tail {
		if l.less(*a.val, *b.val) || l.less(*b.val, *a.val) {
			return false
		}
		a, b = a.forward[0], b.forward[0]
	}
	return true
}
