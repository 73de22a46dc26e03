package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osrank/core"
)

func TestAddNodeDuplicateRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))
	require.ErrorIs(t, g.AddNode("p1", core.Account), core.ErrDuplicateID)
	require.Equal(t, 1, g.NodeCount())
}

func TestAddNodeEmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddNode("", core.Project), core.ErrEmptyID)
}

func TestAddEdgeUnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))

	err := g.AddEdge(0, "p1", "ghost", core.EdgeData{Weight: 1, Type: core.Depend})
	require.ErrorIs(t, err, core.ErrUnknownEndpoint)

	err = g.AddEdge(0, "ghost", "p1", core.EdgeData{Weight: 1, Type: core.Depend})
	require.ErrorIs(t, err, core.ErrUnknownEndpoint)
}

func TestAddEdgeInvalidWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))
	require.NoError(t, g.AddNode("p2", core.Project))

	for _, w := range []float64{-0.1, 1.1} {
		err := g.AddEdge(0, "p1", "p2", core.EdgeData{Weight: w, Type: core.Depend})
		require.ErrorIs(t, err, core.ErrInvalidWeight)
	}
}

func TestInsertionOrderIsNodeIndex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))
	require.NoError(t, g.AddNode("p2", core.Project))
	require.NoError(t, g.AddNode("a1", core.Account))

	idx, ok := g.Index("p1")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	idx, ok = g.Index("a1")
	require.True(t, ok)
	require.Equal(t, 2, idx)

	n, ok := g.NodeAt(2)
	require.True(t, ok)
	require.Equal(t, "a1", n.ID)

	require.Equal(t, 2, g.NumProjects())
	require.Equal(t, 1, g.NumAccounts())
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))
	require.NoError(t, g.AddNode("a1", core.Account))
	require.NoError(t, g.AddNode("a2", core.Account))

	require.NoError(t, g.AddEdge(0, "p1", "a1", core.EdgeData{Weight: 0.4, Type: core.Contrib}))
	require.NoError(t, g.AddEdge(1, "p1", "a2", core.EdgeData{Weight: 0.6, Type: core.Maintain}))

	nbrs := g.Neighbors("p1")
	require.Len(t, nbrs, 2)
	require.Equal(t, "a1", nbrs[0].Target)
	require.Equal(t, "a2", nbrs[1].Target)
	require.Equal(t, 2, g.Degree("p1"))
	require.Equal(t, 0, g.Degree("a1"))
}

func TestEdgeAndNodeDataLookup(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))
	require.NoError(t, g.AddNode("a1", core.Account))
	contribs := uint32(42)
	require.NoError(t, g.AddEdge(7, "p1", "a1", core.EdgeData{Weight: 1, Type: core.Contrib, Contributions: &contribs}))

	kind, ok := g.NodeData("p1")
	require.True(t, ok)
	require.Equal(t, core.Project, kind)

	data, ok := g.EdgeData(7)
	require.True(t, ok)
	require.Equal(t, core.Contrib, data.Type)
	require.NotNil(t, data.Contributions)
	require.Equal(t, uint32(42), *data.Contributions)

	_, ok = g.Node("ghost")
	require.False(t, ok)
	_, ok = g.Edge(999)
	require.False(t, ok)
}

func TestNodesAndEdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("p1", core.Project))
	require.NoError(t, g.AddNode("p2", core.Project))
	require.NoError(t, g.AddEdge(5, "p1", "p2", core.EdgeData{Weight: 1, Type: core.Depend}))
	require.NoError(t, g.AddEdge(3, "p2", "p1", core.EdgeData{Weight: 1, Type: core.Depend}))

	ids := make([]string, 0, 2)
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	require.Equal(t, []string{"p1", "p2"}, ids)

	edgeIDs := make([]core.EdgeID, 0, 2)
	for _, e := range g.Edges() {
		edgeIDs = append(edgeIDs, e.ID)
	}
	require.Equal(t, []core.EdgeID{5, 3}, edgeIDs)

	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())
}
