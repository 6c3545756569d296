package algorithm

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/electric-power/algo-service/pkg/types"
)

// ErrCancelled is returned by Reporter.Update when cancellation has
// been requested for the task. Algorithms must bubble it up unchanged
// so the runner records a CANCELLED terminal state instead of FAILED.
var ErrCancelled = errors.New("task cancelled")

// Reporter receives progress updates from a running algorithm.
type Reporter interface {
	// Update records progress for the task. It returns ErrCancelled
	// when a cancel has been requested; the caller must stop work and
	// return the error.
	Update(percentage int, message string) error
}

// Context carries everything an algorithm needs during execution.
type Context struct {
	TaskID   string
	Params   map[string]any
	Data     *types.Dataset
	Reporter Reporter
	Logger   zerolog.Logger
}

// ReportProgress forwards a progress update through the reporter.
func (c *Context) ReportProgress(percentage int, message string) error {
	return c.Reporter.Update(percentage, message)
}

// Algorithm is the contract every plugin implements.
type Algorithm interface {
	// Meta returns the scheme descriptor used for service discovery.
	// It must be constant for the lifetime of the process.
	Meta() types.SchemeInfo

	// Execute runs the algorithm to completion, reporting progress
	// through ctx. The returned map is the task result payload.
	Execute(ctx *Context) (map[string]any, error)
}
