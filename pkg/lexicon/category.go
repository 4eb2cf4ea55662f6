package lexicon

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Category is an ordered, non-empty, immutable list of words.
type Category struct {
	name  string
	words []string
}

// NewCategory returns a category holding a private copy of words.
// It returns ErrEmptyCategory if no words are given.
func NewCategory(name string, words ...string) (Category, error) {
	if len(words) == 0 {
		return Category{}, fmt.Errorf("%w: %q", ErrEmptyCategory, name)
	}
	return Category{name: name, words: slices.Clone(words)}, nil
}

// MustCategory is like NewCategory but panics on error.
func MustCategory(name string, words ...string) Category {
	c, err := NewCategory(name, words...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the category name, e.g. "nouns".
func (c Category) Name() string { return c.name }

// Len returns the number of words in the category.
func (c Category) Len() int { return len(c.words) }

// At returns the word at index i. It panics if i is out of range.
func (c Category) At(i int) string { return c.words[i] }

// Words returns a copy of the category words in order.
func (c Category) Words() []string { return slices.Clone(c.words) }

// Contains reports whether word belongs to the category.
func (c Category) Contains(word string) bool { return slices.Contains(c.words, word) }

// Longest returns the word with the most characters.
// Ties resolve to the first such word in category order.
func Longest(c Category) string {
	best, bestLen := "", -1
	for _, w := range c.words {
		if n := utf8.RuneCountInString(w); n > bestLen {
			best, bestLen = w, n
		}
	}
	return best
}

// Shortest returns the word with the fewest characters.
// Ties resolve to the first such word in category order.
func Shortest(c Category) string {
	best, bestLen := "", -1
	for _, w := range c.words {
		if n := utf8.RuneCountInString(w); bestLen < 0 || n < bestLen {
			best, bestLen = w, n
		}
	}
	return best
}

// All returns the built-in categories in composition order.
func All() []Category {
	return []Category{Adjectives, Nouns, Verbs, Adverbs}
}

// Lookup resolves a built-in category by name. Both plural and singular
// forms are accepted, case-insensitively.
func Lookup(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range All() {
		if key == c.name || key+"s" == c.name {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
