package problemgen

import "errors"

// ErrInvalidArgument is returned when a caller passes input outside an
// operation's domain: a negative score, an empty tier or operation list,
// or a negative correct answer for distractor generation.
var ErrInvalidArgument = errors.New("invalid argument")
