package domain

import "errors"

// Error kinds for the LoadOrder engine (spec §7). Mutators fail fast
// with one of these; load tolerates malformed active-plugin lines by
// treating them as absent rather than surfacing InvalidArguments.
var (
	ErrInvalidArguments      = errors.New("invalid arguments")
	ErrInvalidPlugin         = errors.New("invalid plugin")
	ErrTooManyActivePlugins  = errors.New("too many active plugins")
	ErrForbiddenDeactivation = errors.New("forbidden deactivation")
	ErrIO                    = errors.New("i/o error")
	ErrOutOfRange            = errors.New("index out of range")
)

// MaxActivePlugins is the hard cap on simultaneously active plugins (§6).
const MaxActivePlugins = 255

// TimestampIncrementSeconds is the per-plugin gap, in seconds, used when writing TIMESTAMP
// load order to disk (§6).
const TimestampIncrementSeconds = 60
