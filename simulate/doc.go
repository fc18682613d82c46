// Package simulate drives a fitted (or caller-supplied) parameter vector
// forward through a Sampler to generate synthetic networks: repeated
// blocks of Metropolis-Hastings moves applied to a live graph, with a
// statistics snapshot recorded every interval steps and the final network
// available for Pajek output via pajekio.WriteGraph.
package simulate
