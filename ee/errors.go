package ee

import "fmt"

// ErrDegenerate wraps the index of the first parameter whose step-size
// scale (Dmean) became non-finite during Algorithm S, indicating the
// sampler has wandered into a degenerate region of the graph space for
// that statistic (e.g. a saturating structural effect).
type ErrDegenerate struct {
	ParamIndex int
}

func (e *ErrDegenerate) Error() string {
	return fmt.Sprintf("ee: degenerate estimation detected at parameter index %d", e.ParamIndex)
}
