package types

import "time"

// Grouping selects which indexes of a package are rendered.
type Grouping struct {
	ByFile              bool
	ByLibrary           bool
	ByContainingPackage bool
}

// Settings is the immutable run configuration shared by every stage.
type Settings struct {
	Strategy        Strategy
	Backend         Backend
	Packages        []string
	AllPackages     bool
	IgnoreLibraries []string
	IgnorePatterns  []string
	ShowCandidates  bool
	Grouping        Grouping
	Output          OutputFormat
	Quiet           bool
	Parallelism     int
	ToolTimeout     time.Duration
}

// ResolveGrouping applies the default grouping when none was requested:
// files and libraries are always shown, containing packages only when
// candidates were looked up.
func ResolveGrouping(requested Grouping, showCandidates bool) Grouping {
	if requested.ByFile || requested.ByLibrary || requested.ByContainingPackage {
		return requested
	}
	return Grouping{
		ByFile:              true,
		ByLibrary:           true,
		ByContainingPackage: showCandidates,
	}
}
