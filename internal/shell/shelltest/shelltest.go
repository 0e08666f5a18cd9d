// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"strings"
	"sync"

	"github.com/blacktop/wslcam/internal/shell"
)

// Handler answers a command. It returns the captured stdout and an error.
type Handler func(ctx context.Context, c *shell.Cmd) (string, error)

// Runner records every command it is given and answers with the handler
// registered for the longest matching argument prefix.
type Runner struct {
	mu       sync.Mutex
	handlers map[string]Handler
	Calls    []*shell.Cmd
}

// New returns an empty Runner. Unregistered commands succeed with no output.
func New() *Runner {
	return &Runner{handlers: make(map[string]Handler)}
}

// On registers h for commands starting with args.
func (r *Runner) On(h Handler, args ...string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key(args)] = h
	return r
}

// Output registers a fixed stdout for commands starting with args.
func (r *Runner) Output(out string, args ...string) *Runner {
	return r.On(func(context.Context, *shell.Cmd) (string, error) { return out, nil }, args...)
}

// Fail registers a non-zero exit for commands starting with args.
func (r *Runner) Fail(code int, args ...string) *Runner {
	return r.On(func(_ context.Context, c *shell.Cmd) (string, error) {
		return "", &shell.ExitError{Args: c.Args, Code: code}
	}, args...)
}

// Run implements shell.Runner.
func (r *Runner) Run(ctx context.Context, c *shell.Cmd) (string, error) {
	r.mu.Lock()
	r.Calls = append(r.Calls, c)
	var (
		best  Handler
		bestN = -1
	)
	for i := len(c.Args); i > 0; i-- {
		if h, ok := r.handlers[key(c.Args[:i])]; ok {
			best, bestN = h, i
			break
		}
	}
	r.mu.Unlock()

	if bestN < 0 {
		return "", nil
	}
	return best(ctx, c)
}

// Called returns true if a command with exactly args was run.
func (r *Runner) Called(args ...string) bool {
	return len(r.Find(args...)) > 0
}

// Find returns every recorded command with exactly args.
func (r *Runner) Find(args ...string) []*shell.Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*shell.Cmd
	for _, c := range r.Calls {
		if key(c.Args) == key(args) {
			out = append(out, c)
		}
	}
	return out
}

func key(args []string) string {
	return strings.Join(args, "\x00")
}
