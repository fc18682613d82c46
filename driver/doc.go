// Package driver wires together config, pajekio, changestat, propose,
// sampler, ee, simulate, and trajectory into the two end-to-end tasks the
// cmd/ergmee CLI exposes: RunEstimation fits a parameter vector against a
// loaded network and writes its trajectory; RunSimulation drives a
// supplied parameter vector forward to generate synthetic networks. Each
// task is identified by a task number, which seeds its RNG and names its
// per-task output files, so many tasks from one config can run
// independently (e.g. one per MPI rank in the original implementation).
package driver
