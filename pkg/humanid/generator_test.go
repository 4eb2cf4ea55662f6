package humanid_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanids/pkg/humanid"
	"github.com/dmitrymomot/humanids/pkg/lexicon"
)

// firstSource always picks the first word of a category.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func fixtureGenerator() *humanid.Generator {
	return humanid.New(
		humanid.WithSource(firstSource{}),
		humanid.WithCategories(
			lexicon.MustCategory("adjectives", "quick", "lazy"),
			lexicon.MustCategory("nouns", "fox", "dog"),
			lexicon.MustCategory("verbs", "jumps", "sleeps"),
			lexicon.MustCategory("adverbs", "silently", "loudly"),
		),
	)
}

func TestGenerateDefaults(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[A-Z][a-z]*-[A-Z][a-z]*-[A-Z][a-z]*$`)
	for range 200 {
		id := humanid.Generate()
		require.Regexp(t, pattern, id)
	}
}

func TestGenerateFixture(t *testing.T) {
	t.Parallel()

	g := fixtureGenerator()

	tests := []struct {
		name string
		opts humanid.Options
		want string
	}{
		{
			name: "defaults",
			opts: humanid.DefaultOptions(),
			want: "Quick-Fox-Jumps",
		},
		{
			name: "no separator no adjectives lowercase",
			opts: humanid.NewBuilder().Separator("").Capitalize(false).AdjectiveCount(0).MustBuild(),
			want: "foxjumps",
		},
		{
			name: "underscore with adverb and two adjectives",
			opts: humanid.NewBuilder().Separator("_").AddAdverb(true).AdjectiveCount(2).MustBuild(),
			want: "Quick_Quick_Fox_Jumps_Silently",
		},
		{
			name: "multi character separator",
			opts: humanid.NewBuilder().Separator(" :: ").Capitalize(false).MustBuild(),
			want: "quick :: fox :: jumps",
		},
		{
			name: "zero adjectives with adverb",
			opts: humanid.NewBuilder().AdjectiveCount(0).AddAdverb(true).MustBuild(),
			want: "Fox-Jumps-Silently",
		},
		{
			name: "zero value options",
			opts: humanid.Options{},
			want: "foxjumps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Generate(tt.opts))
		})
	}
}

func TestGenerateWordCount(t *testing.T) {
	t.Parallel()

	for adjectives := uint(0); adjectives <= 5; adjectives++ {
		for _, adverb := range []bool{false, true} {
			opts := humanid.NewBuilder().
				Separator("-").
				AddAdverb(adverb).
				AdjectiveCount(adjectives).
				MustBuild()

			for range 20 {
				id := humanid.Generate(opts)
				require.NotEmpty(t, id)
				assert.Len(t, strings.Split(id, "-"), opts.WordCount(), id)
			}
		}
	}
}

func TestGenerateZeroAdjectives(t *testing.T) {
	t.Parallel()

	opts := humanid.NewBuilder().AdjectiveCount(0).Capitalize(false).MustBuild()
	for range 100 {
		parts := strings.Split(humanid.Generate(opts), "-")
		require.Len(t, parts, 2)
		assert.True(t, lexicon.Nouns.Contains(parts[0]), parts[0])
		assert.True(t, lexicon.Verbs.Contains(parts[1]), parts[1])
	}

	opts = humanid.NewBuilder().AdjectiveCount(0).AddAdverb(true).MustBuild()
	for range 100 {
		assert.Len(t, strings.Split(humanid.Generate(opts), "-"), 3)
	}
}

func TestGenerateCategoryOrder(t *testing.T) {
	t.Parallel()

	opts := humanid.NewBuilder().
		Separator("_").
		Capitalize(false).
		AddAdverb(true).
		AdjectiveCount(3).
		MustBuild()

	for range 200 {
		parts := strings.Split(humanid.Generate(opts), "_")
		require.Len(t, parts, 6)
		for _, adj := range parts[:3] {
			assert.True(t, lexicon.Adjectives.Contains(adj), adj)
		}
		assert.True(t, lexicon.Nouns.Contains(parts[3]), parts[3])
		assert.True(t, lexicon.Verbs.Contains(parts[4]), parts[4])
		assert.True(t, lexicon.Adverbs.Contains(parts[5]), parts[5])
	}
}

func TestGenerateCapitalization(t *testing.T) {
	t.Parallel()

	t.Run("capitalized", func(t *testing.T) {
		opts := humanid.NewBuilder().Separator("_").AddAdverb(true).AdjectiveCount(2).MustBuild()
		for range 200 {
			parts := strings.Split(humanid.Generate(opts), "_")
			require.Len(t, parts, 5)
			for _, p := range parts {
				r, _ := utf8.DecodeRuneInString(p)
				assert.True(t, unicode.IsUpper(r), "segment %q must start upper-case", p)
				assert.Equal(t, strings.ToLower(p[:1])+p[1:], strings.ToLower(p), "only the first letter changes")
			}
		}
	})

	t.Run("verbatim", func(t *testing.T) {
		opts := humanid.NewBuilder().Capitalize(false).AddAdverb(true).MustBuild()
		for range 200 {
			parts := strings.Split(humanid.Generate(opts), "-")
			require.Len(t, parts, 4)
			assert.True(t, lexicon.Adjectives.Contains(parts[0]), parts[0])
			assert.True(t, lexicon.Nouns.Contains(parts[1]), parts[1])
			assert.True(t, lexicon.Verbs.Contains(parts[2]), parts[2])
			assert.True(t, lexicon.Adverbs.Contains(parts[3]), parts[3])
		}
	})
}

func TestGenerateEmptySeparator(t *testing.T) {
	t.Parallel()

	opts := humanid.NewBuilder().Separator("").Capitalize(false).AdjectiveCount(0).MustBuild()
	pattern := regexp.MustCompile(`^[a-z]+$`)
	for range 100 {
		assert.Regexp(t, pattern, humanid.Generate(opts))
	}
}

func TestGenerateUnicodeWords(t *testing.T) {
	t.Parallel()

	g := humanid.New(
		humanid.WithSource(firstSource{}),
		humanid.WithCategories(
			lexicon.MustCategory("adjectives", "élégant"),
			lexicon.MustCategory("nouns", "ßeta"),
			lexicon.MustCategory("verbs", "ürgt"),
			lexicon.MustCategory("adverbs", "1st"),
		),
	)

	opts := humanid.NewBuilder().AddAdverb(true).MustBuild()
	assert.Equal(t, "Élégant-SSeta-Ürgt-1st", g.Generate(opts))
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	t.Parallel()

	opts := humanid.NewBuilder().AddAdverb(true).AdjectiveCount(2).MustBuild()
	a := humanid.New(humanid.WithSource(lexicon.NewSeededSource(99)))
	b := humanid.New(humanid.WithSource(lexicon.NewSeededSource(99)))

	for range 50 {
		assert.Equal(t, a.Generate(opts), b.Generate(opts))
	}
}

func TestGenerateVariety(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 1000 {
		seen[humanid.Generate()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateConcurrency(t *testing.T) {
	t.Parallel()

	g := humanid.New(humanid.WithSource(lexicon.NewSeededSource(3)))
	opts := humanid.NewBuilder().AddAdverb(true).MustBuild()

	var wg sync.WaitGroup
	ids := make(chan string, 8*100)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				ids <- g.Generate(opts)
				ids <- humanid.Generate()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(ids)
	}()

	for id := range ids {
		assert.NotEmpty(t, id)
	}
}

func TestZeroValueGenerator(t *testing.T) {
	t.Parallel()

	var g humanid.Generator
	opts := humanid.NewBuilder().Capitalize(false).AddAdverb(true).MustBuild()

	for range 50 {
		var id string
		require.NotPanics(t, func() { id = g.Generate(opts) })

		parts := strings.Split(id, "-")
		require.Len(t, parts, 4)
		assert.True(t, lexicon.Adjectives.Contains(parts[0]), parts[0])
		assert.True(t, lexicon.Nouns.Contains(parts[1]), parts[1])
		assert.True(t, lexicon.Verbs.Contains(parts[2]), parts[2])
		assert.True(t, lexicon.Adverbs.Contains(parts[3]), parts[3])
	}

	assert.NotPanics(t, func() { g.Generate(humanid.DefaultOptions()) })
}

func TestEmptyCategoriesKeepBuiltins(t *testing.T) {
	t.Parallel()

	var zero lexicon.Category
	g := humanid.New(
		humanid.WithSource(firstSource{}),
		humanid.WithCategories(zero, lexicon.MustCategory("nouns", "fox"), zero, zero),
	)

	opts := humanid.NewBuilder().Capitalize(false).AddAdverb(true).MustBuild()
	var id string
	require.NotPanics(t, func() { id = g.Generate(opts) })

	want := strings.Join([]string{
		lexicon.Adjectives.At(0),
		"fox",
		lexicon.Verbs.At(0),
		lexicon.Adverbs.At(0),
	}, "-")
	assert.Equal(t, want, id)
}
