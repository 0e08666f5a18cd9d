// Package shell runs external commands on behalf of the pipeline.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/kballard/go-shellquote"
)

// Cmd describes a single external command invocation.
type Cmd struct {
	// Args is the argument vector; Args[0] is the program.
	Args []string
	// Capture buffers stdout/stderr instead of streaming them to the console.
	Capture bool
	// Echo prints the decoded stdout when Capture is set.
	Echo bool
	// Dir overrides the working directory.
	Dir string
	// Env is appended to the current process environment.
	Env []string
}

// Command returns a Cmd for the given argument vector.
func Command(args ...string) *Cmd {
	return &Cmd{Args: args}
}

// Parse builds a Cmd from a shell style command line.
func Parse(line string) (*Cmd, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return Command(args...), nil
}

// Captured switches the command to capture mode.
func (c *Cmd) Captured(echo bool) *Cmd {
	c.Capture = true
	c.Echo = echo
	return c
}

// In sets the working directory of the command.
func (c *Cmd) In(dir string) *Cmd {
	c.Dir = dir
	return c
}

func (c *Cmd) String() string {
	return shellquote.Join(c.Args...)
}

// ExitError is returned when a command exits with a non-zero status or
// could not be started at all (Code == -1).
type ExitError struct {
	Args   []string
	Code   int
	Stdout string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("command failed: %s: %v", shellquote.Join(e.Args...), e.Err)
	}
	return fmt.Sprintf("command failed: %s: exit status %d", shellquote.Join(e.Args...), e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code carried by err, or 0 if err is not an *ExitError.
func ExitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 0
}

// Runner runs commands.
type Runner interface {
	Run(ctx context.Context, c *Cmd) (string, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Exec wired to the process console.
func New() *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes c and blocks until it exits. In capture mode the decoded
// stdout is returned; in stream mode the output goes straight to the
// console and "" is returned.
func (e *Exec) Run(ctx context.Context, c *Cmd) (string, error) {
	if len(c.Args) == 0 {
		return "", fmt.Errorf("no command given")
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	log.WithField("dir", c.Dir).Debugf("running %s", c)

	if !c.Capture {
		cmd.Stdin = e.Stdin
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr
		if err := cmd.Run(); err != nil {
			return "", exitError(c, err, "", "")
		}
		return "", nil
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	out := Decode(stdout.Bytes())
	errOut := Decode(stderr.Bytes())

	if c.Echo && e.Stdout != nil {
		fmt.Fprintln(e.Stdout, out)
	}
	if len(errOut) > 0 && e.Stderr != nil {
		fmt.Fprintln(e.Stderr, errOut)
	}

	if runErr != nil {
		return out, exitError(c, runErr, out, errOut)
	}

	return out, nil
}

func exitError(c *Cmd, err error, stdout, stderr string) error {
	ee := &ExitError{
		Args:   c.Args,
		Code:   -1,
		Stdout: stdout,
		Stderr: stderr,
		Err:    err,
	}
	var xe *exec.ExitError
	if errors.As(err, &xe) {
		ee.Code = xe.ExitCode()
	}
	return ee
}
