// Package humanid generates memorable, human-readable identifiers such as
// "Quick-Fox-Jumps" or "tiny_brave_otter_sleeps_quietly".
//
// An identifier is composed from the word lists in package lexicon in a fixed
// order: zero or more adjectives, exactly one noun, exactly one verb and an
// optional adverb. Every word is drawn independently, so repeated adjectives
// are possible. Words are optionally capitalized and then joined with a
// separator.
//
// Identifiers are neither unique nor unguessable. Use them for labels that
// humans read (deployments, sandboxes, test fixtures), not for secrets.
//
// # Usage
//
// Generate with the defaults (separator "-", capitalized, one adjective, no
// adverb):
//
//	id := humanid.Generate() // e.g. "Quick-Fox-Jumps"
//
// Configure composition with a Builder:
//
//	opts, err := humanid.NewBuilder().
//		Separator("_").
//		Capitalize(false).
//		AddAdverb(true).
//		AdjectiveCount(2).
//		Build()
//	if err != nil {
//		return err
//	}
//	id := humanid.Generate(opts) // e.g. "tiny_brave_otter_sleeps_quietly"
//
// Inject a deterministic random source for reproducible output:
//
//	g := humanid.New(humanid.WithSource(lexicon.NewSeededSource(42)))
//	id := g.Generate(humanid.DefaultOptions())
//
// # Separator
//
// The separator is always explicit. DefaultOptions and NewBuilder use "-";
// an empty separator concatenates the words ("QuickFoxJumps"). There is no
// "unset" separator state.
//
// # Limits
//
// Builder.Build rejects adjective counts above MaxAdjectiveCount with
// ErrTooManyAdjectives. Generate itself never fails.
package humanid
