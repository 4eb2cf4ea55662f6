// Package lexicon holds the static word lists used to build human-readable
// identifiers and the primitives for selecting words from them.
//
// Four categories exist for the lifetime of the process: Adjectives, Nouns,
// Verbs and Adverbs. Each is an ordered, non-empty list of short lowercase
// ASCII words. Categories are immutable after initialization, so they can be
// read from any number of goroutines without synchronization.
//
// # Selection
//
// PickRandom draws a uniformly random word using the package default source,
// which is backed by the math/rand/v2 runtime generator. It is seeded from
// process entropy and safe for concurrent use. It is not suitable for anything
// security related.
//
//	word := lexicon.PickRandom(lexicon.Nouns) // e.g. "fox"
//
// PickRandomFrom takes an explicit RandomSource. Use NewSeededSource when a
// reproducible sequence is needed, e.g. in tests:
//
//	src := lexicon.NewSeededSource(42)
//	word := lexicon.PickRandomFrom(src, lexicon.Verbs)
//
// Longest and Shortest are deterministic helpers. Ties resolve to the first
// matching word in category order.
//
// # Custom categories
//
// NewCategory builds a category from any non-empty word list:
//
//	colors, err := lexicon.NewCategory("colors", "red", "green", "blue")
package lexicon
