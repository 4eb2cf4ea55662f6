package lexicon_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanids/pkg/lexicon"
)

// fixedSource always returns the same index.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestPickRandomMembership(t *testing.T) {
	t.Parallel()

	for _, c := range lexicon.All() {
		for range 1000 {
			w := lexicon.PickRandom(c)
			require.True(t, c.Contains(w), "%q is not a member of %s", w, c.Name())
		}
	}
}

func TestPickRandomDistribution(t *testing.T) {
	t.Parallel()

	for _, c := range lexicon.All() {
		seen := make(map[string]int)
		for range 10000 {
			seen[lexicon.PickRandom(c)]++
		}
		assert.Greater(t, len(seen), 1, "%s: expected more than one distinct word", c.Name())
		// with 10k draws every word of a ~100 word list is practically certain to appear
		assert.Greater(t, len(seen), c.Len()/2, "%s: suspiciously low coverage", c.Name())
	}
}

func TestPickRandomFrom(t *testing.T) {
	t.Parallel()

	c := lexicon.MustCategory("letters", "a", "b", "c")

	t.Run("uses injected source", func(t *testing.T) {
		assert.Equal(t, "a", lexicon.PickRandomFrom(fixedSource(0), c))
		assert.Equal(t, "c", lexicon.PickRandomFrom(fixedSource(2), c))
		assert.Equal(t, "b", lexicon.PickRandomFrom(fixedSource(4), c))
	})

	t.Run("nil source falls back to default", func(t *testing.T) {
		assert.True(t, c.Contains(lexicon.PickRandomFrom(nil, c)))
	})

	t.Run("single word category", func(t *testing.T) {
		one := lexicon.MustCategory("one", "only")
		for range 100 {
			assert.Equal(t, "only", lexicon.PickRandom(one))
		}
	})

	t.Run("zero category yields empty word", func(t *testing.T) {
		var zero lexicon.Category
		assert.NotPanics(t, func() {
			assert.Empty(t, lexicon.PickRandom(zero))
			assert.Empty(t, lexicon.PickRandomFrom(fixedSource(1), zero))
		})
	})
}

func TestSeededSource(t *testing.T) {
	t.Parallel()

	draw := func(src lexicon.RandomSource) []string {
		out := make([]string, 50)
		for i := range out {
			out[i] = lexicon.PickRandomFrom(src, lexicon.Nouns)
		}
		return out
	}

	a := draw(lexicon.NewSeededSource(42))
	b := draw(lexicon.NewSeededSource(42))
	c := draw(lexicon.NewSeededSource(7))

	assert.Equal(t, a, b, "same seed must yield the same sequence")
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestSeededSourceConcurrency(t *testing.T) {
	t.Parallel()

	src := lexicon.NewSeededSource(1)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				idx := src.IntN(10)
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, 10)
			}
		}()
	}
	wg.Wait()
}
