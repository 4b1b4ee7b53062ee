package skiplist

// Stats counts completed operations since the container was constructed or
// last reset by Clear-independent lifecycle events (Move, Swap exchange the
// counters along with the graph they describe). The container is
// single-threaded by contract, so the counters are plain integers.
type Stats struct {
	Inserts  int64
	Erases   int64
	Searches int64
	Clears   int64
}

// Stats returns a snapshot of the container's operation counters.
func (l *SkipList[T]) Stats() Stats {
	return l.stats
}
