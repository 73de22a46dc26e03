package adjacency

import (
	"github.com/katalvlaran/osrank/core"
	"github.com/katalvlaran/osrank/matrix"
)

// BuildFromGraph extracts the three raw relation matrices (dependency,
// contribution, maintenance) from a populated graph by classifying each
// edge on its EdgeType. Depend edges go to dep (project x project); Contrib
// and Maintain edges go to contrib/maintain (project x account), with the
// account endpoint's column computed relative to the first account's global
// index (ingestion is required to have added every project before any
// account, per the graph package's documented ordering contract).
//
// Returns ErrUnsupportedEdgeType if the graph contains a ContribStar,
// MaintainStar or Influence edge: those are derived during Build, never
// stored as raw input.
func BuildFromGraph(g *core.Graph) (dep, contrib, maintain *matrix.CSR[float64], err error) {
	numProjects := g.NumProjects()
	numAccounts := g.NumAccounts()

	depB := matrix.NewBuilder[float64](numProjects, numProjects)
	contribB := matrix.NewBuilder[float64](numProjects, numAccounts)
	maintainB := matrix.NewBuilder[float64](numProjects, numAccounts)

	for _, e := range g.Edges() {
		fromIdx, ok := g.Index(e.From)
		if !ok {
			continue
		}
		toIdx, ok := g.Index(e.To)
		if !ok {
			continue
		}

		switch e.Data.Type {
		case core.Depend:
			depB.Add(fromIdx, toIdx, e.Data.Weight)
		case core.Contrib:
			contribB.Add(fromIdx, toIdx-numProjects, e.Data.Weight)
		case core.Maintain:
			maintainB.Add(fromIdx, toIdx-numProjects, e.Data.Weight)
		default:
			return nil, nil, nil, adjacencyErrorf("BuildFromGraph", ErrUnsupportedEdgeType)
		}
	}

	return depB.Build(), contribB.Build(), maintainB.Build(), nil
}

// MatrixSource adapts a *matrix.CSR[float64] to walk.TransitionSource:
// OutEdges(node) returns the targets and weights of node's row.
type MatrixSource struct {
	T *matrix.CSR[float64]
}

// OutEdges returns node's row as parallel target/weight slices, in
// ascending column order.
func (s MatrixSource) OutEdges(node int) (targets []int, weights []float64) {
	return s.T.RowEntries(node)
}

// GraphSource adapts a *core.Graph to walk.TransitionSource: OutEdges(node)
// returns the out-neighbors of the node at insertion index `node`, using
// each edge's weight directly (no implicit renormalisation - ingestion is
// expected to hand the graph already-normalised Influence edges).
type GraphSource struct {
	G *core.Graph
}

// OutEdges returns the targets and weights of the out-edges of the node at
// insertion index `node`. Returns nil, nil if the index is out of range.
func (s GraphSource) OutEdges(node int) (targets []int, weights []float64) {
	n, ok := s.G.NodeAt(node)
	if !ok {
		return nil, nil
	}
	nbrs := s.G.Neighbors(n.ID)
	if len(nbrs) == 0 {
		return nil, nil
	}
	targets = make([]int, len(nbrs))
	weights = make([]float64, len(nbrs))
	for i, nb := range nbrs {
		idx, _ := s.G.Index(nb.Target)
		targets[i] = idx
		weights[i] = nb.Weight
	}
	return targets, weights
}
