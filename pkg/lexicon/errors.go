package lexicon

import "errors"

var (
	// ErrEmptyCategory is returned when a category is built without words.
	ErrEmptyCategory = errors.New("category must contain at least one word")

	// ErrUnknownCategory is returned by Lookup for names that match no built-in category.
	ErrUnknownCategory = errors.New("unknown word category")
)
