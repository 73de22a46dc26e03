package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/osrank/matrix"
)

// ImportContributions reads a "ID,MAINTAINER,REPO,CONTRIBUTIONS,NAME"
// header + rows CSV and builds the P x A contribution matrix, where A is
// the number of distinct contributor names seen (repeated names collapse
// to the same column, first-seen order — mirroring the Rust importer's
// HashSet-based collapsing). Rows naming an unknown project id are
// silently dropped. The returned []string is the contributor list in
// first-seen order, the account index space contrib shares with whatever
// ImportMaintainers is subsequently run against it.
func ImportContributions(r io.Reader, meta []ProjectMeta) (contrib *matrix.CSR[float64], contributors []string, err error) {
	index := projectIndex(meta)

	rows, err := readCSVRows(r, 5)
	if err != nil {
		return nil, nil, ingestErrorf("ImportContributions", err)
	}

	contributorIdx := make(map[string]int)

	type parsedRow struct {
		projectIdx int
		acctIdx    int
		weight     float64
	}
	var parsed []parsedRow

	for _, row := range rows {
		projectID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, nil, ingestErrorf("ImportContributions", fmt.Errorf("%w: bad id %q", ErrMalformedInput, row[0]))
		}
		contributions, err := strconv.ParseUint(row[3], 10, 32)
		if err != nil {
			return nil, nil, ingestErrorf("ImportContributions", fmt.Errorf("%w: bad contributions %q", ErrMalformedInput, row[3]))
		}

		projectIdx, ok := index[uint32(projectID)]
		if !ok {
			continue
		}

		contributor := row[1]
		acctIdx, ok := contributorIdx[contributor]
		if !ok {
			acctIdx = len(contributors)
			contributorIdx[contributor] = acctIdx
			contributors = append(contributors, contributor)
		}

		parsed = append(parsed, parsedRow{projectIdx: projectIdx, acctIdx: acctIdx, weight: float64(contributions)})
	}

	b := matrix.NewBuilder[float64](len(meta), len(contributors))
	for _, p := range parsed {
		b.Add(p.projectIdx, p.acctIdx, p.weight)
	}
	return b.Build(), contributors, nil
}
