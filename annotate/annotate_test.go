package annotate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osrank/annotate"
)

func TestMemoryAnnotatorDrainPreservesOrder(t *testing.T) {
	a := annotate.NewMemoryAnnotator()
	require.NoError(t, a.Annotate("p1", 0.4))
	require.NoError(t, a.Annotate("p2", 0.6))

	drained := a.Drain()
	require.Equal(t, []annotate.Annotation{{NodeID: "p1", Rank: 0.4}, {NodeID: "p2", Rank: 0.6}}, drained)
}

func TestMemoryAnnotatorOverwriteKeepsOriginalPosition(t *testing.T) {
	a := annotate.NewMemoryAnnotator()
	require.NoError(t, a.Annotate("p1", 0.1))
	require.NoError(t, a.Annotate("p2", 0.2))
	require.NoError(t, a.Annotate("p1", 0.9))

	drained := a.Drain()
	require.Equal(t, "p1", drained[0].NodeID)
	require.Equal(t, 0.9, drained[0].Rank)

	rank, ok := a.Lookup("p1")
	require.True(t, ok)
	require.Equal(t, 0.9, rank)
}

func TestMemoryAnnotatorLookupMissing(t *testing.T) {
	a := annotate.NewMemoryAnnotator()
	_, ok := a.Lookup("nope")
	require.False(t, ok)
}
