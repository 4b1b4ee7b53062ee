package skiplist

import (
	"math/bits"
	randv2 "math/rand/v2"
)

const float64Unit = 1.0 / (1 << 53)

// newRandomSource returns an independently seeded PCG source. Every
// container owns its own source so that two lists never share random state.
func newRandomSource() randv2.Source {
	return randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
}

// newSeededSource returns a PCG source with a fixed seed, making the node
// graph reproducible across runs.
func newSeededSource(seed uint64) randv2.Source {
	return randv2.NewPCG(seed, seed)
}

// randomLevel samples the level for a new node: 1 with probability 1-p,
// 2 with probability p(1-p), and so on, truncated at MaxLevel. The default
// p = 1/2 case counts trailing zero bits of one random word instead of
// drawing per-level floats.
func (l *SkipList[T]) randomLevel() int {
	if l.prob == DefaultProbability {
		level := bits.TrailingZeros64(l.src.Uint64()) + 1
		if level > MaxLevel {
			return MaxLevel
		}
		return level
	}

	level := 1
	for level < MaxLevel {
		randFloat := float64(l.src.Uint64()>>11) * float64Unit
		if randFloat >= l.prob {
			break
		}
		level++
	}
	return level
}
