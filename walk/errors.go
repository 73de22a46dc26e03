// Package walk implements the damped Monte-Carlo random walk that turns a
// transition source (a transition matrix or a graph's outgoing-edge view)
// into per-node visit counts and, from those, Osrank values.
package walk

import "errors"

var (
	// ErrInvalidConfig is returned when Config fails validation (WalksPerSeed
	// <= 0, Damping outside (0,1), Seeds index out of range).
	ErrInvalidConfig = errors.New("walk: invalid configuration")

	// ErrInvariantViolation signals an internal invariant broke (a walk
	// reaching a node index outside 0..NumNodes-1, out-edge targets and
	// weights of different lengths, out-edge weights summing to <= 0) rather
	// than bad caller input; Run
	// returns it as a normal error, it never panics across the package
	// boundary on data the caller supplied.
	ErrInvariantViolation = errors.New("walk: invariant violation")
)

func walkErrorf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
