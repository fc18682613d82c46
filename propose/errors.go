package propose

import "errors"

// ErrProposalExhausted names the case of a Generator failing to find a
// valid move within maxRetries attempts, e.g. on a near-complete dense
// graph where almost every dyad is already an arc. Generator methods
// report that case with ok=false and do not return this error; the
// sampler package reports its own sampler.ErrProposalExhausted.
var ErrProposalExhausted = errors.New("propose: exhausted retries without finding a valid move")
