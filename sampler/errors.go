package sampler

import "errors"

// ErrArcStatConflict is returned by NewIFDSampler when the supplied
// registry already contains a structural "Arc" statistic: IFD maintains
// its own auxiliary arc-count bias internally, and a user-supplied Arc
// term would double-count the same effect against two different
// coefficients with no way to separate them in the fitted theta.
var ErrArcStatConflict = errors.New("sampler: IFD sampler requires the registry not contain an \"Arc\" structural statistic")

// ErrProposalExhausted is returned when neither an add nor a delete
// proposal could be found for a step, e.g. a fully dense graph under the
// plain regime with no eligible delete fallback either.
var ErrProposalExhausted = errors.New("sampler: proposal generator exhausted both add and delete candidates")
