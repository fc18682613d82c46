// Package trajectory writes the tab-separated theta and dzA trajectory
// files produced during estimation: one row per outer iteration (or,
// with OutputAllSteps, one row per inner iteration), with a header line
// naming each parameter. Writer buffers rows and flushes at iteration
// boundaries so a crash mid-iteration never leaves a partially written
// row.
package trajectory
