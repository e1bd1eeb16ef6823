package adapters

import (
	"context"
	"fmt"
	"strings"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

const dpkgQueryTool = "dpkg-query"

// DpkgAdapter reads the dpkg status database.
type DpkgAdapter struct {
	Runner ports.CommandRunnerPort
}

func NewDpkgAdapter(runner ports.CommandRunnerPort) DpkgAdapter {
	return DpkgAdapter{Runner: runner}
}

func (a DpkgAdapter) Tool() string {
	return dpkgQueryTool
}

// ListAllLocalPackages lists every package in the "installed" state.
func (a DpkgAdapter) ListAllLocalPackages(ctx context.Context) ([]string, error) {
	output, err := runChecked(ctx, a.Runner, dpkgQueryTool, "-W", "-f=${db:Status-Abbrev} ${Package}\n")
	if err != nil {
		return nil, err
	}
	var packages []string
	for _, line := range shared.Lines(output) {
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != "ii" {
			continue
		}
		packages = append(packages, fields[1])
	}
	return packages, nil
}

// ListOwnedFiles lists the package's paths. Diversion notes that dpkg
// interleaves with the listing are skipped.
func (a DpkgAdapter) ListOwnedFiles(ctx context.Context, pkg string) ([]string, error) {
	output, err := runChecked(ctx, a.Runner, dpkgQueryTool, "-L", pkg)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range shared.Lines(output) {
		if !strings.HasPrefix(line, "/") {
			continue
		}
		files = append(files, line)
	}
	return files, nil
}

func (a DpkgAdapter) QueryVersion(ctx context.Context, pkg string) (string, error) {
	output, err := runChecked(ctx, a.Runner, dpkgQueryTool, "-W", "-f=${Version}\n", pkg)
	if err != nil {
		return "", err
	}
	version := shared.FirstLine(output)
	if version == "" {
		return "", types.ToolExecutionError(dpkgQueryTool, fmt.Sprintf("no version reported for %s", pkg), nil)
	}
	return normalizeVersion(version), nil
}

var _ ports.PackageManagerPort = DpkgAdapter{}
