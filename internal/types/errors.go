package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// MissingToolError reports that a required external program is not installed.
func MissingToolError(tool string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("required tool not found: %s", tool)).
		WithCause(cause)
}

// ToolExecutionError reports that an external program could not be run or failed.
func ToolExecutionError(tool string, detail string, cause error) error {
	msg := fmt.Sprintf("%s failed", tool)
	if detail != "" {
		msg = fmt.Sprintf("%s failed: %s", tool, detail)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg).
		WithCause(cause)
}

// InvalidPatternError reports an ignore pattern that does not compile.
func InvalidPatternError(pattern string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid ignore pattern %q", pattern)).
		WithCause(cause)
}

// IssuesFoundError signals a successful run that found unresolved libraries.
func IssuesFoundError(packages int) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("unresolved libraries found in %d package(s)", packages))
}
