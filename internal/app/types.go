package app

import "pkg-linkcheck/internal/types"

type CheckRequest struct {
	Packages        []string
	AllPackages     bool
	IgnoreLibraries []string
	IgnorePatterns  []string
	ShowCandidates  bool
	Parallelism     int
}

// NewCheckRequest takes the per-run inputs out of the assembled settings.
func NewCheckRequest(settings types.Settings) CheckRequest {
	return CheckRequest{
		Packages:        settings.Packages,
		AllPackages:     settings.AllPackages,
		IgnoreLibraries: settings.IgnoreLibraries,
		IgnorePatterns:  settings.IgnorePatterns,
		ShowCandidates:  settings.ShowCandidates,
		Parallelism:     settings.Parallelism,
	}
}

type CheckResult struct {
	Packages []types.Package
}

func (r CheckResult) HasIssues() bool {
	return r.IssuesCount() > 0
}

// IssuesCount is the number of packages with at least one unresolved library.
func (r CheckResult) IssuesCount() int {
	count := 0
	for _, pkg := range r.Packages {
		if pkg.HasIssues() {
			count++
		}
	}
	return count
}
