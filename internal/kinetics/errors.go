package kinetics

import "errors"

// Domain errors. Every failed operation surfaces one of these to the
// caller; a rate that was not computed is never substituted with zero.
var (
	// ErrTableNotLoaded indicates an interpolation before a successful Load.
	ErrTableNotLoaded = errors.New("kinetics: rate table not loaded")

	// ErrTableOverflow indicates a table file exceeding the fixed capacity.
	ErrTableOverflow = errors.New("kinetics: rate table exceeds capacity")

	// ErrMalformedTable indicates ragged rows, unparsable numbers or a
	// non-increasing energy axis in the table file.
	ErrMalformedTable = errors.New("kinetics: malformed rate table")

	// ErrReactionNotTabulated indicates a Peng number without a table column.
	ErrReactionNotTabulated = errors.New("kinetics: reaction not tabulated")

	// ErrUnknownReaction indicates a reaction index with no registered
	// schema or rate law.
	ErrUnknownReaction = errors.New("kinetics: unknown reaction index")

	// ErrIndexOutOfRange indicates a species position past the configured count.
	ErrIndexOutOfRange = errors.New("kinetics: species position out of range")
)
