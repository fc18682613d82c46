// Package propose generates candidate arc-toggle moves for the samplers
// in package sampler: uniformly random add/delete moves under the plain
// (unconstrained) regime, and constrained variants for snowball-sample
// and citation-ERGM conditional estimation, where only a restricted set
// of node pairs may be toggled.
package propose
