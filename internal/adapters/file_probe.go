package adapters

import (
	"context"
	"strings"

	"pkg-linkcheck/internal/ports"
)

const fileTool = "file"

// FileProbeAdapter classifies files with file(1).
type FileProbeAdapter struct {
	Runner ports.CommandRunnerPort
}

func NewFileProbeAdapter(runner ports.CommandRunnerPort) FileProbeAdapter {
	return FileProbeAdapter{Runner: runner}
}

func (a FileProbeAdapter) Tool() string {
	return fileTool
}

// IsBinaryLike reports whether file(1) describes the path as ELF. Brief mode
// keeps the path itself out of the description.
func (a FileProbeAdapter) IsBinaryLike(ctx context.Context, path string) (bool, error) {
	output, err := runChecked(ctx, a.Runner, fileTool, "-b", "--", path)
	if err != nil {
		return false, err
	}
	return strings.Contains(string(output), "ELF"), nil
}

var _ ports.FileTypePort = FileProbeAdapter{}
