package skiplist

import (
	"cmp"
	randv2 "math/rand/v2"
)

// Less reports whether a orders before b. It must describe a strict weak
// ordering over the stored type.
type Less[T any] func(a, b T) bool

// SkipList is a generic sorted container backed by a probabilistic
// multi-level linked structure. Search, insertion and erasure take expected
// logarithmic time; iteration is bidirectional over the base-level chain.
//
// The container is single-threaded: no operation may run concurrently with
// any other on the same list. Iterators hold non-owning references and are
// invalidated the instant their node is erased; using one afterwards is a
// contract violation that the list does not police beyond cheap checks.
type SkipList[T any] struct {
	less   Less[T]
	head   *node[T]
	tail   *node[T]
	length int
	src    randv2.Source
	prob   float64
	alloc  nodeAllocator[T]
	stats  Stats
}

// Option configures a SkipList at construction time.
type Option[T any] func(*SkipList[T])

// WithSeed fixes the seed of the container's level source, making the node
// graph reproducible across runs.
func WithSeed[T any](seed uint64) Option[T] {
	return func(l *SkipList[T]) { l.src = newSeededSource(seed) }
}

// WithRandSource injects the random source used for level sampling.
func WithRandSource[T any](src randv2.Source) Option[T] {
	return func(l *SkipList[T]) { l.src = src }
}

// WithProbability sets the per-level promotion probability. Values outside
// (0, 1) are ignored and the default of 1/2 is kept.
func WithProbability[T any](p float64) Option[T] {
	return func(l *SkipList[T]) {
		if p > 0 && p < 1 {
			l.prob = p
		}
	}
}

// WithNodePooling recycles erased nodes through a sync.Pool instead of
// leaving them to the garbage collector.
func WithNodePooling[T any]() Option[T] {
	return func(l *SkipList[T]) { l.alloc = newPoolAllocator[T]() }
}

// New returns an empty SkipList ordered by <.
func New[T cmp.Ordered](opts ...Option[T]) *SkipList[T] {
	return NewFunc(func(a, b T) bool { return a < b }, opts...)
}

// NewFunc returns an empty SkipList ordered by the provided comparison.
func NewFunc[T any](less Less[T], opts ...Option[T]) *SkipList[T] {
	l := &SkipList[T]{
		less: less,
		prob: DefaultProbability,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.src == nil {
		l.src = newRandomSource()
	}
	if l.alloc == nil {
		l.alloc = heapAllocator[T]{}
	}
	l.head, l.tail = newSentinels[T]()
	return l
}

// Len returns the number of stored elements.
func (l *SkipList[T]) Len() int {
	return l.length
}

// Empty reports whether the container holds no elements.
func (l *SkipList[T]) Empty() bool {
	return l.length == 0
}

// descend runs the top-to-bottom search sweep shared by find, insert and
// erase. It records in update the rightmost node strictly less than value at
// every level and returns the base-level predecessor: the last node whose
// value orders before value, or the head if none does.
func (l *SkipList[T]) descend(value T, update []*node[T]) *node[T] {
	x := l.head
	for i := MaxLevel - 1; i >= 0; i-- {
		for x.forward[i] != l.tail && l.less(*x.forward[i].val, value) {
			x = x.forward[i]
		}
		update[i] = x
	}
	return x
}

// Find returns an iterator to an element that compares equivalent to value,
// or End if no such element exists. With duplicates present it lands on the
// first element of the equal run.
func (l *SkipList[T]) Find(value T) Iterator[T] {
	l.stats.Searches++
	x := l.head
	for i := MaxLevel - 1; i >= 0; i-- {
		for x.forward[i] != l.tail && l.less(*x.forward[i].val, value) {
			x = x.forward[i]
		}
	}
	candidate := x.forward[0]
	if candidate != l.tail && !l.less(value, *candidate.val) {
		return Iterator[T]{n: candidate}
	}
	return l.End()
}

// Contains reports whether an element equivalent to value is present.
func (l *SkipList[T]) Contains(value T) bool {
	return l.Find(value) != l.End()
}

// Insert adds value to the container and returns an iterator to the new
// element. Duplicates are permitted: a value equivalent to existing elements
// splices in where the descent stops, immediately before the run of equals.
func (l *SkipList[T]) Insert(value T) Iterator[T] {
	update := make([]*node[T], MaxLevel)
	l.descend(value, update)
	return l.link(value, update)
}

// Emplace constructs the value first so the finished element participates in
// the descent comparisons, then links it exactly as Insert would. If
// construct fails nothing is allocated or linked and the container is
// untouched.
func (l *SkipList[T]) Emplace(construct func() (T, error)) (Iterator[T], error) {
	value, err := construct()
	if err != nil {
		return Iterator[T]{}, err
	}
	update := make([]*node[T], MaxLevel)
	l.descend(value, update)
	return l.link(value, update), nil
}

// link splices a new node carrying value after the recorded predecessors and
// wires the base-level back pointers.
func (l *SkipList[T]) link(value T, update []*node[T]) Iterator[T] {
	level := l.randomLevel()
	n := l.alloc.acquire(value, level)

	for i := 0; i < level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}

	n.back = update[0]
	n.forward[0].back = n

	l.length++
	l.stats.Inserts++
	return Iterator[T]{n: n}
}

// Erase removes the element at pos and returns an iterator to its former
// successor. Erasing the end position or a zero iterator fails with
// ErrOutOfRange. The update vector is recovered by a fresh descent keyed on
// the target's value; it is not cached from the insert that created the node.
func (l *SkipList[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	target := pos.n
	if target == nil || target.val == nil {
		return Iterator[T]{}, ErrOutOfRange
	}

	next := Iterator[T]{n: target.forward[0]}

	update := make([]*node[T], MaxLevel)
	x := l.descend(*target.val, update)

	// The descent lands before the first element of an equal run. Walk the
	// run at the base level until the target itself is next so the update
	// vector names the true predecessors of the node being removed.
	for x.forward[0] != l.tail && x.forward[0] != target && !l.less(*target.val, *x.forward[0].val) {
		x = x.forward[0]
		for i := range x.forward {
			update[i] = x
		}
	}
	if update[0].forward[0] != target {
		panic("skiplist: erase target unreachable from its own value")
	}

	for i := 0; i < len(target.forward); i++ {
		if update[i].forward[i] != target {
			break
		}
		update[i].forward[i] = target.forward[i]
	}

	next.n.back = target.back

	l.length--
	l.stats.Erases++
	l.alloc.release(target)
	return next, nil
}

// Clear removes every element. The sentinels are kept and relinked, so all
// existing End iterators remain valid.
func (l *SkipList[T]) Clear() {
	x := l.head.forward[0]
	for x != l.tail {
		next := x.forward[0]
		l.alloc.release(x)
		x = next
	}
	for i := range l.head.forward {
		l.head.forward[i] = l.tail
	}
	l.tail.back = l.head
	l.length = 0
	l.stats.Clears++
}

// Begin returns an iterator to the first element, or End when empty.
func (l *SkipList[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.forward[0]}
}

// End returns the iterator one past the last element.
func (l *SkipList[T]) End() Iterator[T] {
	return Iterator[T]{n: l.tail}
}

// RBegin returns an iterator to the last element. On an empty container the
// returned iterator is not dereferenceable.
func (l *SkipList[T]) RBegin() Iterator[T] {
	return Iterator[T]{n: l.tail.back}
}

// Front returns the smallest element. It fails with ErrOutOfRange when the
// container is empty.
func (l *SkipList[T]) Front() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	return *l.head.forward[0].val, nil
}

// Back returns the largest element. It fails with ErrOutOfRange when the
// container is empty.
func (l *SkipList[T]) Back() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	return *l.tail.back.val, nil
}
