package digraph

// TwoPathTable stores a count per ordered node pair (i,j). Graph uses one
// instance per two-path family (mixed/in/out for directed graphs, or a
// single instance for undirected graphs).
//
// Implementations must give identical results for Get/Add; the choice
// between them is a memory/speed tradeoff, not an observable behaviour.
type TwoPathTable interface {
	// Get returns the current count for the ordered pair (i,j).
	Get(i, j int) int

	// Add adds delta (positive or negative) to the count for (i,j).
	Add(i, j int, delta int)

	// Reset clears every entry to zero.
	Reset()
}

// DenseTwoPathTable is a flat N*N matrix. O(1) Get/Add, O(N^2) memory.
// Appropriate for small-to-medium node counts where the constant-factor
// speed of a flat slice outweighs the memory cost.
type DenseTwoPathTable struct {
	n     int
	cells []int
}

// NewDenseTwoPathTable allocates a dense table for n nodes.
func NewDenseTwoPathTable(n int) *DenseTwoPathTable {
	return &DenseTwoPathTable{n: n, cells: make([]int, n*n)}
}

func (t *DenseTwoPathTable) Get(i, j int) int {
	return t.cells[i*t.n+j]
}

func (t *DenseTwoPathTable) Add(i, j int, delta int) {
	t.cells[i*t.n+j] += delta
}

func (t *DenseTwoPathTable) Reset() {
	for k := range t.cells {
		t.cells[k] = 0
	}
}

// pairKey is the lookup key for SparseTwoPathTable.
type pairKey struct{ i, j int }

// SparseTwoPathTable is a hash table keyed by (i,j), only materialising
// entries with a non-zero count. Amortised O(1) Get/Add, memory
// proportional to the number of node pairs with at least one two-path,
// which is the better choice for large sparse graphs.
type SparseTwoPathTable struct {
	counts map[pairKey]int
}

// NewSparseTwoPathTable allocates an empty sparse table.
func NewSparseTwoPathTable() *SparseTwoPathTable {
	return &SparseTwoPathTable{counts: make(map[pairKey]int)}
}

func (t *SparseTwoPathTable) Get(i, j int) int {
	return t.counts[pairKey{i, j}]
}

func (t *SparseTwoPathTable) Add(i, j int, delta int) {
	if delta == 0 {
		return
	}
	k := pairKey{i, j}
	v := t.counts[k] + delta
	if v == 0 {
		delete(t.counts, k)
		return
	}
	t.counts[k] = v
}

func (t *SparseTwoPathTable) Reset() {
	t.counts = make(map[pairKey]int)
}
