package humanid

import "errors"

// ErrTooManyAdjectives is returned by Builder.Build when the adjective count
// exceeds MaxAdjectiveCount.
var ErrTooManyAdjectives = errors.New("adjective count exceeds limit")
