// Package ee implements the Equilibrium Expectation estimator: Algorithm
// S establishes an initial step-size scale D0 from a short pilot run,
// then Algorithm EE iterates sampler batches, updating theta by a signed
// step proportional to the accumulated discrepancy between add- and
// delete-side change statistics (dzA), under either the classical or the
// Borisenko update rule. Estimate orchestrates both phases and reports
// degeneracy if any per-parameter step size becomes non-finite.
package ee
