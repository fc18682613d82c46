// Package changestat computes ERGM change statistics: for a sufficient
// statistic z, the change-stat functions in this package compute
// z(G ∪ {i->j}) - z(G) without materialising G ∪ {i->j}, using only the
// incremental state (two-path counters, degrees, attributes) already
// maintained by a *digraph.Graph.
//
// A Registry names which statistics are active for an estimation task and
// in what order; CalcChangeStats evaluates all of them for a single
// candidate arc toggle and reduces them to a scalar log-acceptance-ratio
// contribution using the current parameter vector theta.
package changestat
