package adapters

import (
	"bytes"
	"context"
	"strings"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
)

const (
	lddTool        = "ldd"
	lddNotFound    = "=> not found"
	lddNotDynamic  = "not a dynamic executable"
	lddStaticLinks = "statically linked"
)

// LddInspectorAdapter asks the dynamic loader, through ldd(1), which
// libraries it cannot find.
type LddInspectorAdapter struct {
	Runner ports.CommandRunnerPort
}

func NewLddInspectorAdapter(runner ports.CommandRunnerPort) LddInspectorAdapter {
	return LddInspectorAdapter{Runner: runner}
}

func (a LddInspectorAdapter) Tool() string {
	return lddTool
}

func (a LddInspectorAdapter) Inspect(ctx context.Context, path string) ([]string, error) {
	result, err := a.Runner.Run(ctx, lddTool, path)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		if isStaticReport(result) {
			return nil, nil
		}
		return nil, exitFailure(lddTool, result)
	}
	return parseLddMissing(result.Stdout), nil
}

func isStaticReport(result ports.CommandResult) bool {
	for _, stream := range [][]byte{result.Stdout, result.Stderr} {
		if bytes.Contains(stream, []byte(lddNotDynamic)) || bytes.Contains(stream, []byte(lddStaticLinks)) {
			return true
		}
	}
	return false
}

// parseLddMissing extracts library names from "libfoo.so.1 => not found" lines.
func parseLddMissing(output []byte) []string {
	var missing []string
	for _, line := range shared.Lines(output) {
		if !strings.HasSuffix(line, lddNotFound) {
			continue
		}
		name := strings.TrimSpace(strings.TrimSuffix(line, lddNotFound))
		if name == "" {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}

var _ ports.LinkageInspectorPort = LddInspectorAdapter{}
