package adapters

import (
	"os/exec"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/types"
)

type ToolLocatorAdapter struct{}

func NewToolLocatorAdapter() ToolLocatorAdapter {
	return ToolLocatorAdapter{}
}

func (a ToolLocatorAdapter) Locate(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return types.MissingToolError(tool, err)
	}
	return nil
}

var _ ports.ToolLocatorPort = ToolLocatorAdapter{}
