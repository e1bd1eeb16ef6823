package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"pkg-linkcheck/internal/core"
	"pkg-linkcheck/internal/types"
)

type stubLocator struct {
	missing map[string]bool
}

func (s stubLocator) Locate(tool string) error {
	if s.missing[tool] {
		return types.MissingToolError(tool, errors.New("executable file not found in $PATH"))
	}
	return nil
}

type stubPackages struct {
	mu       *sync.Mutex
	files    map[string][]string
	delays   map[string]time.Duration
	failures map[string]error
	all      []string
	listed   *[]string
}

func newStubPackages(files map[string][]string) stubPackages {
	return stubPackages{
		mu:       &sync.Mutex{},
		files:    files,
		delays:   map[string]time.Duration{},
		failures: map[string]error{},
		listed:   &[]string{},
	}
}

func (s stubPackages) Tool() string { return "pacman" }

func (s stubPackages) ListAllLocalPackages(context.Context) ([]string, error) {
	return s.all, nil
}

func (s stubPackages) ListOwnedFiles(ctx context.Context, pkg string) ([]string, error) {
	s.mu.Lock()
	*s.listed = append(*s.listed, pkg)
	s.mu.Unlock()
	if delay := s.delays[pkg]; delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := s.failures[pkg]; err != nil {
		return nil, err
	}
	return s.files[pkg], nil
}

func (s stubPackages) QueryVersion(context.Context, string) (string, error) {
	return "1.0-1", nil
}

func (s stubPackages) listedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(*s.listed)
}

type stubProbe struct{}

func (stubProbe) Tool() string { return "file" }

func (stubProbe) IsBinaryLike(context.Context, string) (bool, error) { return true, nil }

type stubInspector struct {
	missing map[string][]string
}

func (stubInspector) Tool() string { return "ldd" }

func (s stubInspector) Inspect(_ context.Context, path string) ([]string, error) {
	return s.missing[path], nil
}

type stubProviders struct {
	providers map[string][]string
}

func (stubProviders) Tool() string { return "pkgfile" }

func (s stubProviders) LookupProvidingPackages(_ context.Context, library string) ([]string, error) {
	return s.providers[library], nil
}

func stubService(packages stubPackages, missing map[string][]string) Service {
	return Service{
		Locator:   stubLocator{},
		Packages:  packages,
		Probe:     stubProbe{},
		Inspector: stubInspector{missing: missing},
		Providers: stubProviders{},
		Filter:    core.CandidateFilter{RegularFile: func(string) bool { return true }},
	}
}
