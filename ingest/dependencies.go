package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/osrank/matrix"
)

// ImportDependencies reads a "FROM_ID,TO_ID" header + rows CSV and builds
// the P x P dependency matrix, weight 1 per edge, indexed by meta's order.
// Rows referencing a project id absent from meta are silently dropped (the
// paper importer's own convention for unknown ids).
func ImportDependencies(r io.Reader, meta []ProjectMeta) (*matrix.CSR[float64], error) {
	index := projectIndex(meta)

	rows, err := readCSVRows(r, 2)
	if err != nil {
		return nil, ingestErrorf("ImportDependencies", err)
	}

	b := matrix.NewBuilder[float64](len(meta), len(meta))
	for _, row := range rows {
		from, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, ingestErrorf("ImportDependencies", fmt.Errorf("%w: bad from id %q", ErrMalformedInput, row[0]))
		}
		to, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, ingestErrorf("ImportDependencies", fmt.Errorf("%w: bad to id %q", ErrMalformedInput, row[1]))
		}

		fromIdx, ok := index[uint32(from)]
		if !ok {
			continue
		}
		toIdx, ok := index[uint32(to)]
		if !ok {
			continue
		}
		b.Add(fromIdx, toIdx, 1)
	}
	return b.Build(), nil
}

func projectIndex(meta []ProjectMeta) map[uint32]int {
	index := make(map[uint32]int, len(meta))
	for i, m := range meta {
		index[m.ID] = i
	}
	return index
}
