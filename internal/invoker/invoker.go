// Package invoker runs the build step and the composed benchmark command as
// blocking subprocesses and records the outcome.
package invoker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"time"
)

// execCommand allows mocking os/exec in tests.
var execCommand = exec.CommandContext

// BuildSpec describes the build invocation that must succeed before the
// benchmark command runs.
type BuildSpec struct {
	Tool string
	Args []string
	Dir  string
}

// CommandSpec is the fully composed benchmark invocation. It is built once by
// the resolver and never mutated here.
type CommandSpec struct {
	Tool string
	Args []string
	Dir  string
}

// ExecutionResult is the outcome of running build + benchmark.
type ExecutionResult struct {
	ExitCode       int
	Duration       time.Duration
	BuildSucceeded bool
}

// Runner executes a build followed by a benchmark command.
type Runner interface {
	Run(ctx context.Context, build BuildSpec, bench CommandSpec) (ExecutionResult, error)
}

// Invoker implements Runner with inherited standard streams.
type Invoker struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

func New(stdout, stderr io.Writer, stdin io.Reader) *Invoker {
	return &Invoker{Stdout: stdout, Stderr: stderr, Stdin: stdin}
}

// Run executes the build step, then the benchmark command, blocking until
// each exits. A failed build short-circuits: the benchmark command is never
// started and the build's exit code is returned unchanged. There are no
// retries and no timeout; the call blocks for as long as the subprocesses
// run. Errors that are not process exit statuses (e.g. the tool binary is
// missing) are returned as errors.
func (iv *Invoker) Run(ctx context.Context, build BuildSpec, bench CommandSpec) (ExecutionResult, error) {
	slog.Debug("running build step", "tool", build.Tool, "args", build.Args)

	if code, err := iv.execute(ctx, build.Tool, build.Args, build.Dir); err != nil {
		return ExecutionResult{}, err
	} else if code != 0 {
		return ExecutionResult{ExitCode: code, BuildSucceeded: false}, nil
	}

	slog.Debug("running benchmark command", "tool", bench.Tool, "args", bench.Args)

	start := time.Now()
	code, err := iv.execute(ctx, bench.Tool, bench.Args, bench.Dir)
	elapsed := time.Since(start)
	if err != nil {
		return ExecutionResult{BuildSucceeded: true}, err
	}

	return ExecutionResult{
		ExitCode:       code,
		Duration:       elapsed,
		BuildSucceeded: true,
	}, nil
}

// execute runs a single subprocess and returns its exit code. Only a
// non-exit failure (start failure, missing binary) produces an error.
func (iv *Invoker) execute(ctx context.Context, tool string, args []string, dir string) (int, error) {
	cmd := execCommand(ctx, tool, args...)
	cmd.Dir = dir
	cmd.Stdout = iv.Stdout
	cmd.Stderr = iv.Stderr
	cmd.Stdin = iv.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}
