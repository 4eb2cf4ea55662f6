package humanid

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/humanids/pkg/lexicon"
)

// Generator composes identifiers from word categories. A Generator holds no
// mutable state of its own and is safe for concurrent use as long as its
// RandomSource is. The zero value draws from the built-in lexicon with the
// package default source.
type Generator struct {
	src        lexicon.RandomSource
	adjectives lexicon.Category
	nouns      lexicon.Category
	verbs      lexicon.Category
	adverbs    lexicon.Category
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSource sets the random source used for word selection.
// A nil source keeps the package default.
func WithSource(src lexicon.RandomSource) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithCategories replaces the built-in word lists. An empty Category, such
// as the zero value, keeps the built-in list for that position.
func WithCategories(adjectives, nouns, verbs, adverbs lexicon.Category) GeneratorOption {
	return func(g *Generator) {
		g.adjectives = category(adjectives, g.adjectives)
		g.nouns = category(nouns, g.nouns)
		g.verbs = category(verbs, g.verbs)
		g.adverbs = category(adverbs, g.adverbs)
	}
}

// New returns a Generator over the built-in lexicon.
func New(opts ...GeneratorOption) *Generator {
	g := &Generator{
		adjectives: lexicon.Adjectives,
		nouns:      lexicon.Nouns,
		verbs:      lexicon.Verbs,
		adverbs:    lexicon.Adverbs,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds one identifier: adjectives, noun, verb and the optional
// adverb, in that order, each drawn independently, then joined with the
// configured separator. The result is never empty.
func (g *Generator) Generate(opts Options) string {
	words := make([]string, 0, opts.WordCount())

	adjectives := category(g.adjectives, lexicon.Adjectives)
	for range opts.adjectiveCount {
		words = append(words, lexicon.PickRandomFrom(g.src, adjectives))
	}
	words = append(words,
		lexicon.PickRandomFrom(g.src, category(g.nouns, lexicon.Nouns)),
		lexicon.PickRandomFrom(g.src, category(g.verbs, lexicon.Verbs)),
	)
	if opts.addAdverb {
		words = append(words, lexicon.PickRandomFrom(g.src, category(g.adverbs, lexicon.Adverbs)))
	}

	if opts.capitalize {
		for i, w := range words {
			words[i] = capitalize(w)
		}
	}

	return strings.Join(words, opts.separator)
}

// category returns c, or fallback when c has no words.
func category(c, fallback lexicon.Category) lexicon.Category {
	if c.Len() == 0 {
		return fallback
	}
	return c
}

var defaultGenerator = New()

// Generate builds an identifier with the package default Generator.
// Without arguments DefaultOptions is used; otherwise only the first
// Options value is considered.
//
//	humanid.Generate() // "Brave-Otter-Sleeps"
func Generate(opts ...Options) string {
	if len(opts) == 0 {
		return defaultGenerator.Generate(DefaultOptions())
	}
	return defaultGenerator.Generate(opts[0])
}

// capitalize upper-cases the first code point of w and keeps the rest as is.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	switch {
	case size == 0:
		return w
	case r < utf8.RuneSelf:
		if 'a' <= r && r <= 'z' {
			return string(r-'a'+'A') + w[size:]
		}
		return w
	case r == utf8.RuneError && size == 1:
		return w
	}
	// cases.Caser is stateful and must not be shared across goroutines.
	return cases.Upper(language.Und).String(w[:size]) + w[size:]
}
