package lexicon

import (
	"math/rand/v2"
	"sync"
)

// RandomSource picks an index in [0, n). Implementations must be safe for
// concurrent use and n is always greater than zero.
type RandomSource interface {
	IntN(n int) int
}

// defaultSource backs PickRandom and PickRandomFrom(nil, ...).
var defaultSource RandomSource = runtimeSource{}

// runtimeSource delegates to the math/rand/v2 top-level generator, which the
// runtime seeds from process entropy and guards internally.
type runtimeSource struct{}

func (runtimeSource) IntN(n int) int { return rand.IntN(n) }

// SeededSource is a deterministic RandomSource. Two sources created with the
// same seed yield the same sequence of indexes.
type SeededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a deterministic source seeded with seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN implements RandomSource.
func (s *SeededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// PickRandom returns a uniformly random word of c using the package default
// source, or "" for the zero Category.
func PickRandom(c Category) string {
	return PickRandomFrom(defaultSource, c)
}

// PickRandomFrom returns a uniformly random word of c drawn from src.
// A nil src falls back to the package default source. Categories built with
// NewCategory are never empty; for the zero Category it returns "" without
// consulting src.
func PickRandomFrom(src RandomSource, c Category) string {
	if len(c.words) == 0 {
		return ""
	}
	if src == nil {
		src = defaultSource
	}
	return c.words[src.IntN(len(c.words))]
}
