package digraph

import "errors"

// Sentinel errors returned by Graph mutation and lookup methods.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("digraph: node index out of range")

	// ErrArcExists indicates InsertArc was called for an arc already present.
	ErrArcExists = errors.New("digraph: arc already exists")

	// ErrArcNotFound indicates RemoveArc referenced an arc not present.
	ErrArcNotFound = errors.New("digraph: arc not found")

	// ErrSelfLoop indicates a self-loop was attempted when loops are disabled.
	ErrSelfLoop = errors.New("digraph: self-loop not allowed")

	// ErrNoZones indicates a snowball-zone-only operation was called on a
	// graph with no snowball zone data attached.
	ErrNoZones = errors.New("digraph: no snowball zone data attached")

	// ErrNoCitationTerms indicates a citation-term-only operation was
	// called on a graph with no citation term data attached.
	ErrNoCitationTerms = errors.New("digraph: no citation term data attached")

	// ErrUndirectedOnly indicates an undirected-graph-only operation was
	// called on a directed Graph; ErrDirectedOnly is the reverse case.
	ErrUndirectedOnly = errors.New("digraph: operation requires an undirected graph")

	ErrDirectedOnly = errors.New("digraph: operation requires a directed graph")
)
