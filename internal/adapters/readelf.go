package adapters

import (
	"context"
	"path/filepath"
	"strings"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
)

const readelfTool = "readelf"

// ReadelfInspectorAdapter reads a binary's dynamic section through
// readelf(1) and looks up each NEEDED entry on the library search path.
type ReadelfInspectorAdapter struct {
	Runner     ports.CommandRunnerPort
	SearchPath LibrarySearchPath
}

func NewReadelfInspectorAdapter(runner ports.CommandRunnerPort, searchPath LibrarySearchPath) ReadelfInspectorAdapter {
	return ReadelfInspectorAdapter{Runner: runner, SearchPath: searchPath}
}

func (a ReadelfInspectorAdapter) Tool() string {
	return readelfTool
}

func (a ReadelfInspectorAdapter) Inspect(ctx context.Context, path string) ([]string, error) {
	output, err := runChecked(ctx, a.Runner, readelfTool, "-d", "-W", path)
	if err != nil {
		return nil, err
	}
	section := parseDynamicSection(output)
	origin := filepath.Dir(path)
	var extra []string
	for _, dir := range append(section.rpath, section.runpath...) {
		extra = append(extra, expandOrigin(dir, origin))
	}
	var missing []string
	for _, needed := range section.needed {
		if a.SearchPath.Resolves(needed, extra) {
			continue
		}
		missing = append(missing, needed)
	}
	return missing, nil
}

type dynamicSection struct {
	needed  []string
	rpath   []string
	runpath []string
}

// parseDynamicSection reads the entries of "readelf -d" that matter for
// lookup, e.g.
//
//	0x0000000000000001 (NEEDED)             Shared library: [libc.so.6]
//	0x000000000000001d (RUNPATH)            Library runpath: [$ORIGIN/../lib]
func parseDynamicSection(output []byte) dynamicSection {
	var section dynamicSection
	for _, line := range shared.Lines(output) {
		value, ok := bracketValue(line)
		if !ok {
			continue
		}
		switch {
		case strings.Contains(line, "(NEEDED)"):
			section.needed = append(section.needed, value)
		case strings.Contains(line, "(RPATH)"):
			section.rpath = append(section.rpath, splitPathList(value)...)
		case strings.Contains(line, "(RUNPATH)"):
			section.runpath = append(section.runpath, splitPathList(value)...)
		}
	}
	return section
}

func bracketValue(line string) (string, bool) {
	start := strings.Index(line, "[")
	end := strings.LastIndex(line, "]")
	if start < 0 || end <= start {
		return "", false
	}
	value := strings.TrimSpace(line[start+1 : end])
	return value, value != ""
}

func expandOrigin(dir string, origin string) string {
	replacer := strings.NewReplacer("${ORIGIN}", origin, "$ORIGIN", origin)
	return replacer.Replace(dir)
}

var _ ports.LinkageInspectorPort = ReadelfInspectorAdapter{}
