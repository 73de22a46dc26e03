package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/osrank/annotate"
)

// ExportRanks writes annotations as "id,rank" rows, one per annotation in
// the order given, LF-terminated, rank formatted with at least 6 decimal
// digits of precision.
func ExportRanks(w io.Writer, annotations []annotate.Annotation) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = false

	for _, a := range annotations {
		rank := strconv.FormatFloat(a.Rank, 'f', 6, 64)
		if err := cw.Write([]string{a.NodeID, rank}); err != nil {
			return ingestErrorf("ExportRanks", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ingestErrorf("ExportRanks", err)
	}
	return nil
}

// ImportRanks reads an "id,rank" CSV written by ExportRanks back into
// annotations, in file order. Unlike the header+rows CSVs ingest reads
// elsewhere, this format has no header row, matching what ExportRanks
// itself writes.
func ImportRanks(r io.Reader) ([]annotate.Annotation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	var out []annotate.Annotation
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ingestErrorf("ImportRanks", fmt.Errorf("%w: %v", ErrMalformedInput, err))
		}
		rank, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, ingestErrorf("ImportRanks", fmt.Errorf("%w: bad rank %q", ErrMalformedInput, rec[1]))
		}
		out = append(out, annotate.Annotation{NodeID: rec[0], Rank: rank})
	}
	return out, nil
}
