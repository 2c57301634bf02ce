// Package executor runs a generated command as a child process. The
// command line is split on whitespace: the first field is the program and
// the rest are its arguments. No shell is involved.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrEmptyCommand is returned when there is no program to run.
	ErrEmptyCommand = errors.New("empty command")
	// ErrSpawn is returned when the child process could not be started.
	ErrSpawn = errors.New("failed to start command")
)

// Result is the outcome of a process that was started.
type Result struct {
	Success bool
	// Code is the exit code, or -1 when the process was killed by a signal.
	Code int
}

// Runner starts child processes wired to the given streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner attached to the current process's stdio.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Split breaks command into a program name and its arguments.
func Split(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return fields[0], fields[1:], nil
}

// Run executes command and waits for it. A non-zero exit is reported in
// Result, not as an error; only a failure to start returns an error.
func (r *Runner) Run(ctx context.Context, command string) (Result, error) {
	program, args, err := Split(command)
	if err != nil {
		return Result{}, err
	}

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("%w %q: %v", ErrSpawn, program, err)
	}

	err = cmd.Wait()
	if err == nil {
		return Result{Success: true, Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Success: false, Code: exitErr.ExitCode()}, nil
	}
	return Result{}, fmt.Errorf("waiting for %q: %w", program, err)
}
