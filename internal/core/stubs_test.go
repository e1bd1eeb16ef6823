package core

import (
	"context"
	"sync"

	"pkg-linkcheck/internal/ports"
)

// stubPackages satisfies ports.PackageManagerPort from in-memory tables.
type stubPackages struct {
	files    map[string][]string
	versions map[string]string
	err      error
}

func (s stubPackages) Tool() string { return "stub-pm" }

func (s stubPackages) ListAllLocalPackages(context.Context) ([]string, error) {
	var names []string
	for name := range s.files {
		names = append(names, name)
	}
	return names, nil
}

func (s stubPackages) ListOwnedFiles(_ context.Context, pkg string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.files[pkg], nil
}

func (s stubPackages) QueryVersion(_ context.Context, pkg string) (string, error) {
	return s.versions[pkg], nil
}

// stubProbe treats every path in binaries as ELF.
type stubProbe struct {
	binaries map[string]bool
	err      error
}

func (s stubProbe) Tool() string { return "stub-probe" }

func (s stubProbe) IsBinaryLike(_ context.Context, path string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.binaries[path], nil
}

// stubInspector reports a fixed set of missing libraries per path.
type stubInspector struct {
	mu      *sync.Mutex
	missing map[string][]string
	errs    map[string]error
	seen    *[]string
}

func newStubInspector(missing map[string][]string) stubInspector {
	return stubInspector{mu: &sync.Mutex{}, missing: missing, errs: map[string]error{}, seen: &[]string{}}
}

func (s stubInspector) Tool() string { return "stub-inspector" }

func (s stubInspector) Inspect(_ context.Context, path string) ([]string, error) {
	s.mu.Lock()
	*s.seen = append(*s.seen, path)
	s.mu.Unlock()
	if err, ok := s.errs[path]; ok {
		return nil, err
	}
	return s.missing[path], nil
}

// stubProviders answers provider lookups from a table.
type stubProviders struct {
	providers map[string][]string
	err       error
}

func (s stubProviders) Tool() string { return "stub-lookup" }

func (s stubProviders) LookupProvidingPackages(_ context.Context, library string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.providers[library], nil
}

func allRegular(string) bool { return true }

var (
	_ ports.PackageManagerPort   = stubPackages{}
	_ ports.FileTypePort         = stubProbe{}
	_ ports.LinkageInspectorPort = stubInspector{}
	_ ports.ProviderLookupPort   = stubProviders{}
)
