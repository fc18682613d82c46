// Package sampler implements the Metropolis-Hastings kernels that drive
// both estimation and simulation: BasicSampler (plain Metropolis-Hastings
// over add/delete moves drawn uniformly) and IFDSampler (the Improved
// Fixed Density sampler, which alternates add and delete proposals and
// maintains an auxiliary parameter biasing their acceptance toward a
// target density).
//
// Every Sampler is single-threaded. IFDSampler keeps no state beyond what
// is passed explicitly into Run: a task's IFDState is held by that task's
// IFDTaskSampler (or by whoever calls IFDSampler.Run directly) and is
// threaded through every call, so two tasks never share a sampler's
// mutable state.
package sampler
