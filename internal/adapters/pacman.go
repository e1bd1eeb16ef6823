package adapters

import (
	"context"
	"fmt"
	"strings"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

const pacmanTool = "pacman"

// PacmanAdapter reads the pacman local database.
type PacmanAdapter struct {
	Runner ports.CommandRunnerPort
}

func NewPacmanAdapter(runner ports.CommandRunnerPort) PacmanAdapter {
	return PacmanAdapter{Runner: runner}
}

func (a PacmanAdapter) Tool() string {
	return pacmanTool
}

// ListAllLocalPackages lists foreign packages, the ones not found in any
// sync database.
func (a PacmanAdapter) ListAllLocalPackages(ctx context.Context) ([]string, error) {
	result, err := a.Runner.Run(ctx, pacmanTool, "-Qqm")
	if err != nil {
		return nil, err
	}
	if noMatch(result) {
		return nil, nil
	}
	if result.ExitCode != 0 {
		return nil, exitFailure(pacmanTool, result)
	}
	return shared.Lines(result.Stdout), nil
}

func (a PacmanAdapter) ListOwnedFiles(ctx context.Context, pkg string) ([]string, error) {
	output, err := runChecked(ctx, a.Runner, pacmanTool, "-Qql", pkg)
	if err != nil {
		return nil, err
	}
	return shared.Lines(output), nil
}

func (a PacmanAdapter) QueryVersion(ctx context.Context, pkg string) (string, error) {
	output, err := runChecked(ctx, a.Runner, pacmanTool, "-Q", pkg)
	if err != nil {
		return "", err
	}
	for _, line := range shared.Lines(output) {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == pkg {
			return normalizeVersion(fields[1]), nil
		}
	}
	return "", types.ToolExecutionError(pacmanTool, fmt.Sprintf("no version reported for %s", pkg), nil)
}

var _ ports.PackageManagerPort = PacmanAdapter{}
