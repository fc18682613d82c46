// Package digraph provides the in-memory graph representation used by the
// ERGM samplers and change-statistic functions: a directed or undirected
// graph on a fixed node set {0,...,N-1}, with incrementally maintained
// forward/reverse arc lists, a flat arc index for O(1) uniform-random arc
// selection, two-path counters, and optional per-node attribute tables.
//
// Graph is not safe for concurrent use. Each estimation task owns exactly
// one Graph and mutates it from a single goroutine; see the package-level
// concurrency notes in the sampler package.
//
// # Two-path counters
//
// For every ordered pair (i,j), Graph maintains the count of "mixed"
// two-paths i->k->j, "in" two-paths (shared senders to i and j) and "out"
// two-paths (shared receivers from i and j) for directed graphs, or a
// single undirected two-path count for undirected graphs. These are kept
// exact across InsertArc/RemoveArc by a localised delta update rather than
// being recomputed from scratch, which is what makes each sampler proposal
// O(1) expected work. Two implementations are available behind the
// TwoPathTable interface: DenseTwoPathTable (an N*N flat slice) and
// SparseTwoPathTable (a hash table keyed by node pair), selected with
// WithDenseTwoPath / WithSparseTwoPath. Both give identical results; the
// choice is a memory/speed tradeoff only.
package digraph
