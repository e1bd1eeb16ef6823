package core

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

// InvertDependencies builds the library -> files index of a package. Each
// file contributes each of its libraries once, so no file can repeat
// within an entry.
func InvertDependencies(deps []types.FileDependency) []types.LibraryRequired {
	index := map[string][]string{}
	for _, dep := range deps {
		for _, library := range dep.LibraryDependencies {
			index[library] = append(index[library], dep.FileName)
		}
	}
	if len(index) == 0 {
		return nil
	}
	requirements := make([]types.LibraryRequired, 0, len(index))
	for _, library := range shared.SortedKeys(index) {
		files := index[library]
		sort.Strings(files)
		requirements = append(requirements, types.LibraryRequired{
			LibraryName:    library,
			FilesRequiring: files,
		})
	}
	return requirements
}

// Aggregator resolves candidate providers for missing libraries.
type Aggregator struct {
	Providers   ports.ProviderLookupPort
	Parallelism int
}

func NewAggregator(providers ports.ProviderLookupPort, parallelism int) Aggregator {
	return Aggregator{Providers: providers, Parallelism: parallelism}
}

// PackagesContaining looks up every required library concurrently. The
// first lookup failure cancels the rest and is returned.
func (a Aggregator) PackagesContaining(ctx context.Context, requirements []types.LibraryRequired) ([]types.PackagesContaining, error) {
	if len(requirements) == 0 {
		return nil, nil
	}
	results := make([]types.PackagesContaining, len(requirements))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelismOrDefault(a.Parallelism))
	for i, requirement := range requirements {
		g.Go(func() error {
			packages, err := a.Providers.LookupProvidingPackages(gctx, requirement.LibraryName)
			if err != nil {
				return err
			}
			results[i] = types.PackagesContaining{
				LibraryName: requirement.LibraryName,
				Packages:    packages,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parallelismOrDefault(value int) int {
	if value <= 0 {
		return runtime.NumCPU()
	}
	return value
}
