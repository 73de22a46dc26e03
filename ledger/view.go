package ledger

// LedgerView is the read-only hyperparameter accessor. adjacency.Build takes
// the resolved HyperParams value, not a view, so separating the view from
// HyperParams lets the CLI swap a file-backed view in for the hardcoded
// paper defaults without adjacency knowing which one it got.
type LedgerView interface {
	HyperParams() (HyperParams, error)
}

// MockLedger always returns DefaultHyperParams, the paper's own values.
// Grounded on the original implementation's HyperParams::default, which
// serves the same role: a fixed, citable baseline for tests and for callers
// that have not supplied an override file.
type MockLedger struct{}

// HyperParams implements LedgerView.
func (MockLedger) HyperParams() (HyperParams, error) {
	return DefaultHyperParams(), nil
}
