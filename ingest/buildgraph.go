package ingest

import (
	"github.com/katalvlaran/osrank/adjacency"
	"github.com/katalvlaran/osrank/core"
	"github.com/katalvlaran/osrank/ledger"
	"github.com/katalvlaran/osrank/matrix"
)

// BuildGraph assembles the transition matrix via adjacency.Build and
// materialises it into a fresh graph as Influence edges, following the
// Rust import_network's final loop exactly: edge ids increase from 0 in
// row-major, column-ascending order over the assembled matrix. Project
// nodes are added first (in projects order), then account nodes (in
// contributors order), matching the graph package's "projects before
// accounts" insertion-order contract.
func BuildGraph(projects []ProjectMeta, contributors []string, dep, contrib, maintain *matrix.CSR[float64], h ledger.HyperParams) (*core.Graph, error) {
	g := core.NewGraph()

	for _, p := range projects {
		if err := g.AddNode(p.Name, core.Project); err != nil {
			return nil, ingestErrorf("BuildGraph", err)
		}
	}
	for _, c := range contributors {
		if err := g.AddNode(c, core.Account); err != nil {
			return nil, ingestErrorf("BuildGraph", err)
		}
	}

	network, err := adjacency.Build(dep, contrib, maintain, h)
	if err != nil {
		return nil, ingestErrorf("BuildGraph", err)
	}

	numProjects := len(projects)
	nodeName := func(idx int) string {
		if idx < numProjects {
			return projects[idx].Name
		}
		return contributors[idx-numProjects]
	}

	var currentEdgeID core.EdgeID
	for rc, weight := range network.All() {
		from := nodeName(rc.Row)
		to := nodeName(rc.Col)
		if err := g.AddEdge(currentEdgeID, from, to, core.EdgeData{Weight: weight, Type: core.Influence}); err != nil {
			return nil, ingestErrorf("BuildGraph", err)
		}
		currentEdgeID++
	}

	return g, nil
}
