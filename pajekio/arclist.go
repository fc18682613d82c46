package pajekio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadArcList reads a Pajek-format network file: a "*Vertices N" header,
// optional vertex label lines, then an "*Arcs" or "*Edges" section of
// "i j" pairs (1-indexed, as Pajek convention), giving numNodes,
// directed, and the 0-indexed arc list.
func LoadArcList(path string) (numNodes int, directed bool, arcs [][2]int, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return 0, false, nil, &IOError{Path: path, Err: ferr}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	sawVertices := false
	inArcs := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(strings.ToLower(line), "*vertices"):
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return 0, false, nil, &DataError{Path: path, Msg: fmt.Sprintf("line %d: malformed *Vertices header", lineNo)}
			}
			n, perr := strconv.Atoi(fields[1])
			if perr != nil || n < 0 {
				return 0, false, nil, &DataError{Path: path, Msg: fmt.Sprintf("line %d: bad vertex count %q", lineNo, fields[1])}
			}
			numNodes = n
			sawVertices = true
			inArcs = false
			continue
		case strings.HasPrefix(strings.ToLower(line), "*arcs"):
			directed = true
			inArcs = true
			continue
		case strings.HasPrefix(strings.ToLower(line), "*edges"):
			directed = false
			inArcs = true
			continue
		case strings.HasPrefix(line, "*"):
			// Unrecognised Pajek section (e.g. vertex coordinates); skip its body.
			inArcs = false
			continue
		}

		if !sawVertices {
			continue // line before the *Vertices header, ignored
		}
		if !inArcs {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false, nil, &DataError{Path: path, Msg: fmt.Sprintf("line %d: malformed arc line %q", lineNo, line)}
		}
		i, ierr := strconv.Atoi(fields[0])
		j, jerr := strconv.Atoi(fields[1])
		if ierr != nil || jerr != nil {
			return 0, false, nil, &DataError{Path: path, Msg: fmt.Sprintf("line %d: non-integer endpoint in %q", lineNo, line)}
		}
		i, j = i-1, j-1
		if i < 0 || i >= numNodes || j < 0 || j >= numNodes {
			return 0, false, nil, &DataError{Path: path, Msg: fmt.Sprintf("line %d: endpoint out of range [1,%d]", lineNo, numNodes)}
		}
		arcs = append(arcs, [2]int{i, j})
	}
	if err := scanner.Err(); err != nil {
		return 0, false, nil, &IOError{Path: path, Err: err}
	}
	if !sawVertices {
		return 0, false, nil, &DataError{Path: path, Msg: "missing *Vertices header"}
	}

	return numNodes, directed, arcs, nil
}

// WriteGraph serialises g to Pajek arc-list format at path, for
// simulation mode's final-network output.
func WriteGraph(path string, g graphLike) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "*Vertices %d\n", g.NumNodes())
	if g.IsDirected() {
		fmt.Fprintln(w, "*Arcs")
	} else {
		fmt.Fprintln(w, "*Edges")
	}
	for k := 0; k < g.NumArcs(); k++ {
		i, j := g.ArcAt(k) // undirected: each edge appears once in allarcs
		fmt.Fprintf(w, "%d %d\n", i+1, j+1)
	}
	return w.Flush()
}

// graphLike is the minimal surface WriteGraph needs, kept separate from
// a direct *digraph.Graph import so pajekio's write path can be tested
// against a fake without constructing a real graph.
type graphLike interface {
	NumNodes() int
	IsDirected() bool
	NumArcs() int
	ArcAt(k int) (int, int)
}
