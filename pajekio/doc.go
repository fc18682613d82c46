// Package pajekio reads and writes the Pajek-format files this module
// exchanges with the rest of the ERGM toolchain: arc-list network files,
// per-node attribute files (binary/categorical/continuous/set), snowball
// zone files, and citation term files. LoadGraph assembles a fully
// configured *digraph.Graph from a network file plus whichever attribute
// and zone/term files a Config names; WriteGraph serialises a simulated
// network back to Pajek arc-list format.
package pajekio
