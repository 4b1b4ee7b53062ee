package skiplist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// collect walks the base-level chain through the public iterator.
func collect[T any](t *testing.T, l *SkipList[T]) []T {
	t.Helper()
	var out []T
	for it := l.Begin(); it != l.End(); {
		v, err := it.Value()
		require.NoError(t, err)
		out = append(out, v)
		require.NoError(t, it.Next())
	}
	return out
}

// checkInvariants verifies the structural contract of the node graph: a
// sorted base chain whose back pointers mirror forward[0], a length that
// matches the chain, and per-level chains that only visit nodes tall enough
// to participate.
func checkInvariants[T any](t *testing.T, l *SkipList[T]) {
	t.Helper()

	count := 0
	prev := l.head
	for x := l.head.forward[0]; x != l.tail; x = x.forward[0] {
		require.NotNil(t, x.val, "value node with absent value")
		if prev != l.head {
			require.False(t, l.less(*x.val, *prev.val), "base chain out of order")
		}
		require.Same(t, prev, x.back, "back pointer does not mirror forward[0]")
		prev = x
		count++
	}
	require.Same(t, prev, l.tail.back)
	require.Equal(t, count, l.length)

	for i := 1; i < MaxLevel; i++ {
		last := l.head
		for x := l.head.forward[i]; x != l.tail; x = x.forward[i] {
			require.Greater(t, len(x.forward), i, "node linked above its level")
			if last != l.head {
				require.False(t, l.less(*x.val, *last.val), "level %d out of order", i)
			}
			last = x
		}
	}
}

func TestInsertKeepsOrder(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](1))

	for _, v := range []int{6, 3, 5, 8, 1, 2, 7} {
		l.Insert(v)
	}

	require.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, collect(t, l))
	require.Equal(t, 7, l.Len())
	checkInvariants(t, l)
}

func TestScenarioInsertThenErase(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](7))

	l.Insert(3)
	l.Insert(1)
	l.Insert(4)
	require.Equal(t, []int{1, 3, 4}, collect(t, l))

	next, err := l.Erase(l.Find(3))
	require.NoError(t, err)
	v, err := next.Value()
	require.NoError(t, err)
	require.Equal(t, 4, v)

	require.Equal(t, []int{1, 4}, collect(t, l))
	require.Equal(t, 2, l.Len())
	checkInvariants(t, l)
}

func TestDescendingInsertYieldsAscendingTraversal(t *testing.T) {
	t.Parallel()
	const n = 1000
	l := New[int](WithSeed[int](99))

	for v := n - 1; v >= 0; v-- {
		l.Insert(v)
	}

	require.Equal(t, n, l.Len())
	got := collect(t, l)
	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, i, v)
	}
	checkInvariants(t, l)
}

func TestFindAndContains(t *testing.T) {
	t.Parallel()
	l := New[string](WithSeed[string](3))

	for _, v := range []string{"pear", "apple", "fig"} {
		l.Insert(v)
	}

	it := l.Find("fig")
	require.NotEqual(t, l.End(), it)
	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, "fig", v)

	require.Equal(t, l.End(), l.Find("grape"))
	require.True(t, l.Contains("pear"))
	require.False(t, l.Contains("grape"))
}

func TestEraseFindRoundTrip(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](11))

	for _, v := range []int{10, 20, 30} {
		l.Insert(v)
	}

	_, err := l.Erase(l.Find(20))
	require.NoError(t, err)
	require.Equal(t, l.End(), l.Find(20))
	require.Equal(t, []int{10, 30}, collect(t, l))
	checkInvariants(t, l)
}

func TestEraseEndFails(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](5))
	l.Insert(1)

	_, err := l.Erase(l.End())
	require.ErrorIs(t, err, ErrOutOfRange)

	var zero Iterator[int]
	_, err = l.Erase(zero)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.Equal(t, 1, l.Len())
}

func TestEraseReturnsSuccessor(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](13))
	for v := 0; v < 10; v++ {
		l.Insert(v)
	}

	it := l.Begin()
	for it != l.End() {
		next, err := l.Erase(it)
		require.NoError(t, err)
		it = next
	}
	require.Equal(t, 0, l.Len())
	require.Equal(t, l.Begin(), l.End())
	checkInvariants(t, l)
}

type record struct {
	key int
	seq int
}

func recordLess(a, b record) bool { return a.key < b.key }

func TestDuplicatesSpliceBeforeEqualRun(t *testing.T) {
	t.Parallel()
	l := NewFunc(recordLess, WithSeed[record](17))

	l.Insert(record{key: 1, seq: 0})
	l.Insert(record{key: 2, seq: 1})
	l.Insert(record{key: 2, seq: 2})
	l.Insert(record{key: 2, seq: 3})
	l.Insert(record{key: 3, seq: 4})

	// The descent stops at the first node not less than the incoming value,
	// so each new equal lands at the front of its run.
	got := collect(t, l)
	seqs := make([]int, 0, len(got))
	for _, r := range got {
		seqs = append(seqs, r.seq)
	}
	require.Equal(t, []int{0, 3, 2, 1, 4}, seqs)
	checkInvariants(t, l)
}

func TestEraseSpecificDuplicate(t *testing.T) {
	t.Parallel()
	l := NewFunc(recordLess, WithSeed[record](19))

	l.Insert(record{key: 2, seq: 1})
	l.Insert(record{key: 2, seq: 2})
	l.Insert(record{key: 2, seq: 3})

	// Walk to the middle element of the equal run and erase exactly it.
	it := l.Begin()
	require.NoError(t, it.Next())
	mid, err := it.Value()
	require.NoError(t, err)

	_, err = l.Erase(it)
	require.NoError(t, err)

	got := collect(t, l)
	require.Len(t, got, 2)
	for _, r := range got {
		require.NotEqual(t, mid.seq, r.seq)
	}
	checkInvariants(t, l)
}

func TestClear(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](23))
	for v := 0; v < 100; v++ {
		l.Insert(v)
	}

	end := l.End()
	l.Clear()

	require.Equal(t, 0, l.Len())
	require.True(t, l.Empty())
	require.Equal(t, end, l.End(), "sentinels must survive Clear")
	require.Equal(t, l.Begin(), l.End())
	checkInvariants(t, l)

	l.Insert(42)
	require.Equal(t, []int{42}, collect(t, l))
}

func TestEmplace(t *testing.T) {
	t.Parallel()
	l := New[string](WithSeed[string](29))
	l.Insert("b")

	it, err := l.Emplace(func() (string, error) {
		return fmt.Sprintf("%s%s", "a", "a"), nil
	})
	require.NoError(t, err)
	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, "aa", v)
	require.Equal(t, []string{"aa", "b"}, collect(t, l))
}

func TestEmplaceConstructionFailureLeavesListUntouched(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](31))
	l.Insert(1)
	l.Insert(2)

	boom := errors.New("construction failed")
	_, err := l.Emplace(func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)

	require.Equal(t, 2, l.Len())
	require.Equal(t, []int{1, 2}, collect(t, l))
	checkInvariants(t, l)
}

func TestSeededListsBuildIdenticalGraphs(t *testing.T) {
	t.Parallel()
	build := func() *SkipList[int] {
		l := New[int](WithSeed[int](0xfeed))
		for v := 0; v < 256; v++ {
			l.Insert(v * 3 % 257)
		}
		return l
	}

	levels := func(l *SkipList[int]) []int {
		var out []int
		for x := l.head.forward[0]; x != l.tail; x = x.forward[0] {
			out = append(out, len(x.forward))
		}
		return out
	}

	a, b := build(), build()
	require.True(t, a.Equal(b))
	require.Equal(t, levels(a), levels(b), "same seed must yield the same node levels")
}

func TestFrontAndBack(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](37))

	_, err := l.Front()
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = l.Back()
	require.ErrorIs(t, err, ErrOutOfRange)

	for _, v := range []int{5, 1, 9} {
		l.Insert(v)
	}

	front, err := l.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	back, err := l.Back()
	require.NoError(t, err)
	require.Equal(t, 9, back)
}

func TestStatsCounters(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](41))

	for v := 0; v < 10; v++ {
		l.Insert(v)
	}
	l.Find(3)
	l.Contains(4)
	_, err := l.Erase(l.Find(5))
	require.NoError(t, err)
	l.Clear()

	s := l.Stats()
	require.Equal(t, int64(10), s.Inserts)
	require.Equal(t, int64(1), s.Erases)
	// Find, Contains and the Find feeding Erase each count one search.
	require.Equal(t, int64(3), s.Searches)
	require.Equal(t, int64(1), s.Clears)
}

func TestSizeInvariantAcrossMixedOps(t *testing.T) {
	t.Parallel()
	l := New[int](WithSeed[int](43))

	completedInserts, completedRemovals := 0, 0
	for v := 0; v < 200; v++ {
		l.Insert(v % 50)
		completedInserts++
		if v%3 == 0 {
			if it := l.Find(v % 7); it != l.End() {
				_, err := l.Erase(it)
				require.NoError(t, err)
				completedRemovals++
			}
		}
	}

	require.Equal(t, completedInserts-completedRemovals, l.Len())
	checkInvariants(t, l)
}
