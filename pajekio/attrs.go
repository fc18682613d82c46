package pajekio

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// readAttrTable reads a whitespace-delimited attribute file: a header line
// of column names, then one row per node (in node order 1..N), each row
// holding one token per column. "NA" marks a missing value in any column.
// Blank lines are skipped, except in a single-column table, where a blank
// line is a row holding one empty cell.
func readAttrTable(path string, numNodes int) (names []string, rows [][]string, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return nil, nil, &IOError{Path: path, Err: ferr}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, nil, &DataError{Path: path, Msg: "empty attribute file"}
	}
	names = strings.Fields(scanner.Text())
	if len(names) == 0 {
		return nil, nil, &DataError{Path: path, Msg: "missing header row"}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(names) == 1 {
				rows = append(rows, []string{""})
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(names) {
			return nil, nil, &DataError{Path: path, Msg: fmt.Sprintf("row has %d fields, want %d", len(fields), len(names))}
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	if len(rows) != numNodes {
		return nil, nil, &DataError{Path: path, Msg: fmt.Sprintf("got %d data rows, want %d (*Vertices count)", len(rows), numNodes)}
	}
	return names, rows, nil
}

// LoadBinaryAttrs reads a binary attribute file (values 0, 1, or "NA"),
// returning one column per name in header order.
func LoadBinaryAttrs(path string, numNodes int) (names []string, columns [][]int, err error) {
	names, rows, err := readAttrTable(path, numNodes)
	if err != nil {
		return nil, nil, err
	}
	columns = make([][]int, len(names))
	for c := range names {
		col := make([]int, numNodes)
		for r, row := range rows {
			tok := row[c]
			if tok == "NA" {
				col[r] = -1 // digraph.BinaryNA
				continue
			}
			v, perr := strconv.Atoi(tok)
			if perr != nil || (v != 0 && v != 1) {
				return nil, nil, &DataError{Path: path, Msg: fmt.Sprintf("row %d col %q: invalid binary value %q", r+1, names[c], tok)}
			}
			col[r] = v
		}
		columns[c] = col
	}
	return names, columns, nil
}

// LoadCategoricalAttrs reads a categorical attribute file (non-negative
// integer codes, or "NA").
func LoadCategoricalAttrs(path string, numNodes int) (names []string, columns [][]int, err error) {
	names, rows, err := readAttrTable(path, numNodes)
	if err != nil {
		return nil, nil, err
	}
	columns = make([][]int, len(names))
	for c := range names {
		col := make([]int, numNodes)
		for r, row := range rows {
			tok := row[c]
			if tok == "NA" {
				col[r] = -1 // digraph.CategoricalNA
				continue
			}
			v, perr := strconv.Atoi(tok)
			if perr != nil || v < 0 {
				return nil, nil, &DataError{Path: path, Msg: fmt.Sprintf("row %d col %q: invalid categorical value %q", r+1, names[c], tok)}
			}
			col[r] = v
		}
		columns[c] = col
	}
	return names, columns, nil
}

// LoadContinuousAttrs reads a continuous attribute file (floating-point
// values, or "NA" mapped to NaN).
func LoadContinuousAttrs(path string, numNodes int) (names []string, columns [][]float64, err error) {
	names, rows, err := readAttrTable(path, numNodes)
	if err != nil {
		return nil, nil, err
	}
	columns = make([][]float64, len(names))
	for c := range names {
		col := make([]float64, numNodes)
		for r, row := range rows {
			tok := row[c]
			if tok == "NA" {
				col[r] = math.NaN()
				continue
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, nil, &DataError{Path: path, Msg: fmt.Sprintf("row %d col %q: invalid continuous value %q", r+1, names[c], tok)}
			}
			col[r] = v
		}
		columns[c] = col
	}
	return names, columns, nil
}

// LoadSetAttrs reads a set-valued attribute file. Each cell holds a
// comma-separated list of non-negative integer codes (empty string for
// the empty set, "NA" for missing).
func LoadSetAttrs(path string, numNodes int) (names []string, columns [][][]int, err error) {
	names, rows, err := readAttrTable(path, numNodes)
	if err != nil {
		return nil, nil, err
	}
	columns = make([][][]int, len(names))
	for c := range names {
		col := make([][]int, numNodes)
		for r, row := range rows {
			tok := row[c]
			if tok == "NA" || tok == "" {
				col[r] = nil
				continue
			}
			parts := strings.Split(tok, ",")
			set := make([]int, 0, len(parts))
			for _, p := range parts {
				v, perr := strconv.Atoi(p)
				if perr != nil || v < 0 {
					return nil, nil, &DataError{Path: path, Msg: fmt.Sprintf("row %d col %q: invalid set element %q", r+1, names[c], p)}
				}
				set = append(set, v)
			}
			col[r] = set
		}
		columns[c] = col
	}
	return names, columns, nil
}
