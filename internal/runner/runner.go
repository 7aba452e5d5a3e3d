// Package runner executes external commands synchronously.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tacogips/skel/internal/debug"
)

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Command string
	Args    []string
	Result  Result
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", e.commandLine(), e.Result.ExitCode)
	if stderr := strings.TrimSpace(e.Result.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExitError) commandLine() string {
	return strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
}

// Runner runs commands to completion.
type Runner interface {
	// Run executes a command with captured output.
	Run(ctx context.Context, name string, args ...string) (Result, error)

	// RunAttached executes a command connected to the terminal. Stderr is
	// mirrored to the terminal and captured.
	RunAttached(ctx context.Context, name string, args ...string) (Result, error)
}

// OS runs commands with os/exec.
type OS struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a runner attached to the process's standard streams.
func New() *OS {
	return &OS{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *OS) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	return finish(name, args, cmd, &stdout, &stderr)
}

// RunAttached implements Runner.
func (r *OS) RunAttached(ctx context.Context, name string, args ...string) (Result, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	return finish(name, args, cmd, nil, &stderr)
}

func finish(name string, args []string, cmd *exec.Cmd, stdout, stderr *bytes.Buffer) (Result, error) {
	debug.Debug("[runner] Running %s %v", name, args)

	err := cmd.Run()

	result := Result{Stderr: stderr.String()}
	if stdout != nil {
		result.Stdout = stdout.String()
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			debug.Debug("[runner] %s exited with status %d", name, result.ExitCode)
			return result, &ExitError{Command: name, Args: args, Result: result}
		}
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}

	debug.Debug("[runner] %s finished", name)
	return result, nil
}
