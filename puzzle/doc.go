// Package puzzle holds the plumbing shared by the daily solvers:
// a registry mapping (day, part) to a Solver, input loading,
// and small parsing and numeric helpers.
//
// Errors:
//
//   - ErrBadDay, ErrNoParts, ErrDuplicateDay: rejected registrations.
//   - ErrUnknownDay, ErrUnknownPart: failed lookups.
//   - ErrMalformedInput: wrapped by solvers for unparsable input.
package puzzle
