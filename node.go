package skiplist

// node is one element of the layered pointer graph. A nil val marks a
// sentinel (head or tail); value nodes point at their stored element. The
// node's level is the length of its forward slice, drawn once at creation
// and fixed for the node's lifetime.
type node[T any] struct {
	val     *T
	forward []*node[T]
	back    *node[T]
}

const (
	// MaxLevel caps the number of forward-pointer slots a node may own.
	MaxLevel = 32

	// DefaultProbability is the per-level promotion probability used when
	// no WithProbability option is given.
	DefaultProbability = 1.0 / 2.0
)

// newSentinels builds the permanent head and tail boundary nodes. The head
// owns a full set of forward slots, all initially pointing at the tail; the
// tail owns none, which is what terminates forward traversal.
func newSentinels[T any]() (head, tail *node[T]) {
	head = &node[T]{forward: make([]*node[T], MaxLevel)}
	tail = &node[T]{}
	for i := range head.forward {
		head.forward[i] = tail
	}
	tail.back = head
	return head, tail
}
