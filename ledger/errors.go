// Package ledger provides the read-only view onto the five paper
// hyperparameters that weight each relation when adjacency.Build assembles
// the transition matrix.
//
// Hyperparameters are kept as exact big.Rat values here, matching the
// original implementation's Fraction-backed Weight type; adjacency.Build is
// the single point where they are floated, per the one-way conversion
// policy the config surface documents.
package ledger

import "errors"

var (
	// ErrInvalidHyperparam is returned when a hyperparameter is outside (0,1]
	// or a required field is nil.
	ErrInvalidHyperparam = errors.New("ledger: hyperparameter out of range")

	// ErrLedgerUnavailable wraps lower-level failures (file, parse) from a
	// concrete LedgerView implementation.
	ErrLedgerUnavailable = errors.New("ledger: view unavailable")
)

func ledgerErrorf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
