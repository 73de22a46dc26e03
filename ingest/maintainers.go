package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/osrank/matrix"
)

// ImportMaintainers reads a "ID,MAINTAINER,REPO,CONTRIBUTIONS,NAME" header
// + rows CSV (the same shape ImportContributions reads) and builds the
// P x A maintenance matrix over the account index space ImportContributions
// already established. A maintainer name not already present in
// contributors is dropped rather than allocating a new account column:
// Build requires contrib and maintain to share one column space, so the
// account set is fixed by whichever import ran first. This is a design
// decision beyond what the original importer did (which left the
// maintenance matrix permanently zero); see DESIGN.md.
func ImportMaintainers(r io.Reader, meta []ProjectMeta, contributors []string) (*matrix.CSR[float64], error) {
	projIdx := projectIndex(meta)
	contribIdx := make(map[string]int, len(contributors))
	for i, c := range contributors {
		contribIdx[c] = i
	}

	rows, err := readCSVRows(r, 5)
	if err != nil {
		return nil, ingestErrorf("ImportMaintainers", err)
	}

	b := matrix.NewBuilder[float64](len(meta), len(contributors))
	for _, row := range rows {
		projectID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, ingestErrorf("ImportMaintainers", fmt.Errorf("%w: bad id %q", ErrMalformedInput, row[0]))
		}
		weight, err := strconv.ParseUint(row[3], 10, 32)
		if err != nil {
			return nil, ingestErrorf("ImportMaintainers", fmt.Errorf("%w: bad contributions %q", ErrMalformedInput, row[3]))
		}

		rowIdx, ok := projIdx[uint32(projectID)]
		if !ok {
			continue
		}
		colIdx, ok := contribIdx[row[1]]
		if !ok {
			continue
		}
		b.Add(rowIdx, colIdx, float64(weight))
	}
	return b.Build(), nil
}
