package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/osrank/core"
)

// ExportGraph serialises g's edges as an "id,from,to,weight" CSV, in
// insertion order, the flat wire format build-adjacency writes and rank
// reads back.
func ExportGraph(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = false

	if err := cw.Write([]string{"id", "from", "to", "weight"}); err != nil {
		return ingestErrorf("ExportGraph", err)
	}
	for _, e := range g.Edges() {
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.From,
			e.To,
			strconv.FormatFloat(e.Data.Weight, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return ingestErrorf("ExportGraph", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ingestErrorf("ExportGraph", err)
	}
	return nil
}

// LoadGraph reads an "id,from,to,weight" CSV written by ExportGraph and
// reconstructs a graph with Influence edges, adding any node it has not
// seen yet as it is first referenced. The flat edge list carries no node
// kind, so every node is added as core.Project; this is a simplification
// documented as a design decision, since the walk engine (the only
// consumer of a graph loaded this way) never reads NodeKind.
func LoadGraph(r io.Reader) (*core.Graph, error) {
	rows, err := readCSVRows(r, 4)
	if err != nil {
		return nil, ingestErrorf("LoadGraph", err)
	}

	g := core.NewGraph()
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, ingestErrorf("LoadGraph", fmt.Errorf("%w: bad id %q", ErrMalformedInput, row[0]))
		}
		weight, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, ingestErrorf("LoadGraph", fmt.Errorf("%w: bad weight %q", ErrMalformedInput, row[3]))
		}

		from, to := row[1], row[2]
		if _, ok := g.Node(from); !ok {
			if err := g.AddNode(from, core.Project); err != nil {
				return nil, ingestErrorf("LoadGraph", err)
			}
		}
		if _, ok := g.Node(to); !ok {
			if err := g.AddNode(to, core.Project); err != nil {
				return nil, ingestErrorf("LoadGraph", err)
			}
		}
		if err := g.AddEdge(core.EdgeID(id), from, to, core.EdgeData{Weight: weight, Type: core.Influence}); err != nil {
			return nil, ingestErrorf("LoadGraph", err)
		}
	}
	return g, nil
}
