package skiplist

import "sync"

// nodeAllocator is the container's memory-allocation strategy, chosen at
// construction and fixed for the container's lifetime. release must sever a
// node's value and links so that stale iterators observe a sentinel-like
// node instead of live data.
type nodeAllocator[T any] interface {
	acquire(value T, level int) *node[T]
	release(n *node[T])
	// fork returns an allocator of the same strategy for a new container.
	// Containers never share allocator state.
	fork() nodeAllocator[T]
}

// heapAllocator is the default strategy: one fresh node per insertion,
// reclaimed by the garbage collector after release drops the references.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) acquire(value T, level int) *node[T] {
	return &node[T]{
		val:     &value,
		forward: make([]*node[T], level),
	}
}

func (heapAllocator[T]) release(n *node[T]) {
	n.val = nil
	n.back = nil
	for i := range n.forward {
		n.forward[i] = nil
	}
	n.forward = nil
}

func (heapAllocator[T]) fork() nodeAllocator[T] {
	return heapAllocator[T]{}
}

// poolAllocator recycles nodes through a sync.Pool, trading release-time
// zeroing for fewer allocations under churn-heavy workloads.
type poolAllocator[T any] struct {
	pool *sync.Pool
}

func newPoolAllocator[T any]() *poolAllocator[T] {
	return &poolAllocator[T]{
		pool: &sync.Pool{
			New: func() any { return new(node[T]) },
		},
	}
}

func (a *poolAllocator[T]) acquire(value T, level int) *node[T] {
	n := a.pool.Get().(*node[T])

	if cap(n.forward) < level {
		n.forward = make([]*node[T], level)
	} else {
		n.forward = n.forward[:level]
		for i := range n.forward {
			n.forward[i] = nil
		}
	}

	n.val = &value
	n.back = nil
	return n
}

func (a *poolAllocator[T]) release(n *node[T]) {
	n.val = nil
	n.back = nil
	if cap(n.forward) > 0 {
		n.forward = n.forward[:cap(n.forward)]
		for i := range n.forward {
			n.forward[i] = nil
		}
	}
	a.pool.Put(n)
}

func (a *poolAllocator[T]) fork() nodeAllocator[T] {
	return newPoolAllocator[T]()
}
