package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ProjectMeta is a single row of the project metadata CSV: id, name,
// platform. Row order becomes the project's matrix index, matching the
// Rust importer's "order of visit is the matrix index" convention.
type ProjectMeta struct {
	ID       uint32
	Name     string
	Platform string
}

// ImportProjects reads a "ID,NAME,PLATFORM" header + rows CSV and returns
// one ProjectMeta per row, in file order.
func ImportProjects(r io.Reader) ([]ProjectMeta, error) {
	rows, err := readCSVRows(r, 3)
	if err != nil {
		return nil, ingestErrorf("ImportProjects", err)
	}

	out := make([]ProjectMeta, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, ingestErrorf("ImportProjects", fmt.Errorf("%w: bad id %q", ErrMalformedInput, row[0]))
		}
		out = append(out, ProjectMeta{ID: uint32(id), Name: row[1], Platform: row[2]})
	}
	return out, nil
}

// readCSVRows reads a header row (discarded) followed by data rows, each
// expected to have exactly width fields.
func readCSVRows(r io.Reader, width int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = width

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
