package humanid

import "fmt"

const (
	// DefaultSeparator joins words when no separator is configured.
	DefaultSeparator = "-"

	// DefaultAdjectiveCount is the number of adjectives prepended by default.
	DefaultAdjectiveCount uint = 1

	// MaxAdjectiveCount is the largest adjective count Build accepts.
	MaxAdjectiveCount uint = 1024
)

// Options configures identifier composition. Values are immutable: obtain
// them from DefaultOptions or a Builder.
//
// The zero value joins words without a separator, does not capitalize,
// omits the adverb and uses no adjectives, e.g. "foxjumps".
type Options struct {
	separator      string
	capitalize     bool
	addAdverb      bool
	adjectiveCount uint
}

// DefaultOptions returns the canonical defaults: separator "-",
// capitalization on, no adverb, one adjective. E.g. "Quick-Fox-Jumps".
func DefaultOptions() Options {
	return Options{
		separator:      DefaultSeparator,
		capitalize:     true,
		addAdverb:      false,
		adjectiveCount: DefaultAdjectiveCount,
	}
}

// Separator returns the string placed between words; "" joins them directly.
func (o Options) Separator() string { return o.separator }

// Capitalize reports whether the first letter of every word is upper-cased.
func (o Options) Capitalize() bool { return o.capitalize }

// AddAdverb reports whether an adverb is appended after the verb.
func (o Options) AddAdverb() bool { return o.addAdverb }

// AdjectiveCount returns how many adjectives precede the noun.
func (o Options) AdjectiveCount() uint { return o.adjectiveCount }

// WordCount returns how many words an identifier built with o contains.
func (o Options) WordCount() int {
	n := int(o.adjectiveCount) + 2
	if o.addAdverb {
		n++
	}
	return n
}

// String implements fmt.Stringer for logging.
func (o Options) String() string {
	return fmt.Sprintf("separator=%q capitalize=%t adverb=%t adjectives=%d",
		o.separator, o.capitalize, o.addAdverb, o.adjectiveCount)
}

// Builder assembles Options step by step. Each method returns an updated
// copy, so a partially configured Builder can be shared and extended.
//
//	opts, err := humanid.NewBuilder().
//		Separator("_").
//		AddAdverb(true).
//		AdjectiveCount(2).
//		Build()
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder initialized with DefaultOptions.
func NewBuilder() Builder {
	return Builder{opts: DefaultOptions()}
}

// Separator sets the string placed between words. An empty string is legal
// and concatenates the words.
func (b Builder) Separator(sep string) Builder {
	b.opts.separator = sep
	return b
}

// Capitalize toggles upper-casing the first letter of every word.
func (b Builder) Capitalize(v bool) Builder {
	b.opts.capitalize = v
	return b
}

// AddAdverb toggles appending an adverb after the verb.
func (b Builder) AddAdverb(v bool) Builder {
	b.opts.addAdverb = v
	return b
}

// AdjectiveCount sets how many adjectives precede the noun. Zero is legal.
func (b Builder) AdjectiveCount(n uint) Builder {
	b.opts.adjectiveCount = n
	return b
}

// Build returns the configured Options.
// It fails with ErrTooManyAdjectives when the count exceeds MaxAdjectiveCount.
func (b Builder) Build() (Options, error) {
	if b.opts.adjectiveCount > MaxAdjectiveCount {
		return Options{}, fmt.Errorf("%w: %d > %d", ErrTooManyAdjectives, b.opts.adjectiveCount, MaxAdjectiveCount)
	}
	return b.opts, nil
}

// MustBuild is like Build but panics on error.
func (b Builder) MustBuild() Options {
	opts, err := b.Build()
	if err != nil {
		panic(err)
	}
	return opts
}
