package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

// CommandRunnerAdapter runs external programs with a process-wide bound on
// the number of live subprocesses.
type CommandRunnerAdapter struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewCommandRunnerAdapter(parallelism int, timeout time.Duration) *CommandRunnerAdapter {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &CommandRunnerAdapter{
		sem:     semaphore.NewWeighted(int64(parallelism)),
		timeout: timeout,
	}
}

func (a *CommandRunnerAdapter) Run(ctx context.Context, name string, args ...string) (ports.CommandResult, error) {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return ports.CommandResult{}, types.ToolExecutionError(name, "interrupted", err)
	}
	defer a.sem.Release(1)

	runCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, name, args...)
	// Tool output is parsed, so pin the message locale.
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result := ports.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return result, types.ToolExecutionError(name, fmt.Sprintf("timed out after %s", a.timeout), err)
	}
	if ctx.Err() != nil {
		return result, types.ToolExecutionError(name, "interrupted", ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, types.ToolExecutionError(name, "could not be started", shared.CommandError(result.Stderr, err))
}

// runChecked runs a program and treats a non-zero exit as a failure.
func runChecked(ctx context.Context, runner ports.CommandRunnerPort, name string, args ...string) ([]byte, error) {
	result, err := runner.Run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, exitFailure(name, result)
	}
	return result.Stdout, nil
}

// noMatch reports the "nothing found" exit used by query tools: status 1
// with no output at all.
func noMatch(result ports.CommandResult) bool {
	return result.ExitCode == 1 &&
		len(bytes.TrimSpace(result.Stdout)) == 0 &&
		len(bytes.TrimSpace(result.Stderr)) == 0
}

func exitFailure(name string, result ports.CommandResult) error {
	detail := shared.FirstLine(result.Stderr)
	if detail == "" {
		detail = fmt.Sprintf("exit status %d", result.ExitCode)
	}
	return types.ToolExecutionError(name, detail, fmt.Errorf("exit status %d", result.ExitCode))
}

var _ ports.CommandRunnerPort = (*CommandRunnerAdapter)(nil)
