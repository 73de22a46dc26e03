package ledger_test

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osrank/ledger"
)

func TestDefaultHyperParamsMatchPaper(t *testing.T) {
	h := ledger.DefaultHyperParams()
	require.NoError(t, h.Validate())

	f := h.Floats()
	require.InDelta(t, 1.0/7.0, f.ContribFactor, 1e-12)
	require.InDelta(t, 2.0/5.0, f.ContribPrimeFactor, 1e-12)
	require.InDelta(t, 4.0/7.0, f.DependFactor, 1e-12)
	require.InDelta(t, 2.0/7.0, f.MaintainFactor, 1e-12)
	require.InDelta(t, 3.0/5.0, f.MaintainPrimeFactor, 1e-12)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	h := ledger.DefaultHyperParams()
	h.DependFactor = big.NewRat(0, 1)
	require.ErrorIs(t, h.Validate(), ledger.ErrInvalidHyperparam)

	h2 := ledger.DefaultHyperParams()
	h2.DependFactor = big.NewRat(3, 2)
	require.ErrorIs(t, h2.Validate(), ledger.ErrInvalidHyperparam)

	h3 := ledger.DefaultHyperParams()
	h3.MaintainFactor = nil
	require.ErrorIs(t, h3.Validate(), ledger.ErrInvalidHyperparam)
}

func TestMockLedgerReturnsDefaults(t *testing.T) {
	m := ledger.MockLedger{}
	h, err := m.HyperParams()
	require.NoError(t, err)
	require.Equal(t, ledger.DefaultHyperParams().Floats(), h.Floats())
}

func TestYAMLLedgerMissingFileFallsBackToDefaults(t *testing.T) {
	y := ledger.YAMLLedger{Path: filepath.Join(t.TempDir(), "nope.yaml")}
	h, err := y.HyperParams()
	require.NoError(t, err)
	require.Equal(t, ledger.DefaultHyperParams().Floats(), h.Floats())
}

func TestYAMLLedgerPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyperparams.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depend_factor: \"1/2\"\n"), 0o644))

	y := ledger.YAMLLedger{Path: path}
	h, err := y.HyperParams()
	require.NoError(t, err)

	f := h.Floats()
	require.InDelta(t, 0.5, f.DependFactor, 1e-12)
	require.InDelta(t, 1.0/7.0, f.ContribFactor, 1e-12, "unset fields keep the paper default")
}

func TestYAMLLedgerRejectsInvalidRational(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contrib_factor: \"not-a-fraction\"\n"), 0o644))

	y := ledger.YAMLLedger{Path: path}
	_, err := y.HyperParams()
	require.ErrorIs(t, err, ledger.ErrInvalidHyperparam)
}

func TestYAMLLedgerRejectsOutOfRangeOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maintain_factor: \"2/1\"\n"), 0o644))

	y := ledger.YAMLLedger{Path: path}
	_, err := y.HyperParams()
	require.ErrorIs(t, err, ledger.ErrInvalidHyperparam)
}
