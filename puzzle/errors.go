package puzzle

import "errors"

var (
	// ErrBadDay indicates a day outside 1..25.
	ErrBadDay = errors.New("puzzle: day must be between 1 and 25")
	// ErrNoParts indicates a registration without any Solver.
	ErrNoParts = errors.New("puzzle: at least one part required")
	// ErrDuplicateDay indicates a day registered twice.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates a lookup for an unregistered day.
	ErrUnknownDay = errors.New("puzzle: day not registered")
	// ErrUnknownPart indicates a lookup for a part the day lacks.
	ErrUnknownPart = errors.New("puzzle: part not registered")
	// ErrMalformedInput indicates input a solver cannot interpret.
	ErrMalformedInput = errors.New("puzzle: malformed input")
)
