package driver

import (
	"errors"
	"fmt"

	"github.com/grafestim/ergmee/config"
	"github.com/grafestim/ergmee/ee"
	"github.com/grafestim/ergmee/pajekio"
)

// TaskError wraps any error surfaced while running a numbered task, so
// logs and exit codes can always report which task failed.
type TaskError struct {
	Task int
	Err  error
}

func (e *TaskError) Error() string { return fmt.Sprintf("driver: task %d: %v", e.Task, e.Err) }
func (e *TaskError) Unwrap() error { return e.Err }

// Exit codes distinguish the broad categories of task failure, matching
// spec.md §6's exit-code table (0 success, 1 CLI usage error — handled
// by cobra before a task ever runs — and distinct negative codes for
// config, I/O, data, and degeneracy failures surfaced from a task).
const (
	exitConfigError  = -2
	exitIOError      = -3
	exitDataError    = -4
	exitDegenerate   = -5
	exitUnknownError = -1
)

// ExitCode maps err to a process exit code: 0 for nil, and otherwise the
// most specific category its chain unwraps to.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var configErr *config.ConfigError
	if errors.As(err, &configErr) {
		return exitConfigError
	}
	var ioErr *pajekio.IOError
	if errors.As(err, &ioErr) {
		return exitIOError
	}
	var dataErr *pajekio.DataError
	if errors.As(err, &dataErr) {
		return exitDataError
	}
	var degenErr *ee.ErrDegenerate
	if errors.As(err, &degenErr) {
		return exitDegenerate
	}
	return exitUnknownError
}
