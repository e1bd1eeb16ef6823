package ports

import "context"

// CommandResult is the captured outcome of one external program run.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunnerPort runs external programs. A non-zero exit is reported
// through ExitCode, not as an error; the error is reserved for programs
// that could not be started or were interrupted.
type CommandRunnerPort interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// ToolLocatorPort checks that an external program is installed.
type ToolLocatorPort interface {
	Locate(tool string) error
}
