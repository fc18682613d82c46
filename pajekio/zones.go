package pajekio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readIntPerNode reads a file of one non-negative integer per line, one
// line per node in node order, and checks the line count against
// numNodes.
func readIntPerNode(path string, numNodes int) ([]int, error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return nil, &IOError{Path: path, Err: ferr}
	}
	defer f.Close()

	var vals []int
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.Atoi(line)
		if perr != nil || v < 0 {
			return nil, &DataError{Path: path, Msg: fmt.Sprintf("line %d: invalid value %q", lineNo, line)}
		}
		vals = append(vals, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if len(vals) != numNodes {
		return nil, &DataError{Path: path, Msg: fmt.Sprintf("got %d values, want %d (*Vertices count)", len(vals), numNodes)}
	}
	return vals, nil
}

// LoadZones reads a snowball zone file: one wave index per node, in node
// order. At least two distinct zone values must appear for conditional
// estimation to have a non-inner boundary; driver enforces that, since it
// requires the loaded zone data Validate alone can't see.
func LoadZones(path string, numNodes int) ([]int, error) {
	return readIntPerNode(path, numNodes)
}

// LoadTerms reads a citation term file: one time-period index per node,
// in node order.
func LoadTerms(path string, numNodes int) ([]int, error) {
	return readIntPerNode(path, numNodes)
}
