package core

import (
	"context"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"pkg-linkcheck/internal/policies"
	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

// PackageChecker verifies every file of one package.
type PackageChecker struct {
	Packages       ports.PackageManagerPort
	Verifier       Verifier
	Policy         policies.IgnorePolicy
	Aggregator     Aggregator
	ShowCandidates bool
	Parallelism    int
}

func (c PackageChecker) Check(ctx context.Context, name string) (types.Package, error) {
	assert.NotEmpty(ctx, name, "package name must be set")
	started := time.Now()
	pkg := types.NewPackage(name)

	version, err := c.Packages.QueryVersion(ctx, name)
	if err != nil {
		return types.Package{}, err
	}
	pkg.Version = version

	files, err := c.Packages.ListOwnedFiles(ctx, name)
	if err != nil {
		return types.Package{}, err
	}
	files = shared.SortedUnique(files)
	ownFiles := policies.BaseNames(files)

	deps, err := c.verifyFiles(ctx, files)
	if err != nil {
		return types.Package{}, err
	}
	pkg.FileDependencies = c.Policy.Apply(deps, ownFiles)
	pkg.LibraryRequirements = InvertDependencies(pkg.FileDependencies)
	if c.ShowCandidates {
		containing, err := c.Aggregator.PackagesContaining(ctx, pkg.LibraryRequirements)
		if err != nil {
			return types.Package{}, err
		}
		pkg.PackagesContaining = containing
	}

	log.Ctx(ctx).Debug().
		Str("package", name).
		Int("files", len(files)).
		Int("unresolved_files", len(pkg.FileDependencies)).
		Int("unresolved_libraries", len(pkg.LibraryRequirements)).
		Dur("elapsed", time.Since(started)).
		Msg("package checked")
	return pkg, nil
}

// verifyFiles inspects all files concurrently and returns the non-empty
// results in input order. The first failure cancels the remaining work.
func (c PackageChecker) verifyFiles(ctx context.Context, files []string) ([]types.FileDependency, error) {
	results := make([]*types.FileDependency, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelismOrDefault(c.Parallelism))
	for i, file := range files {
		g.Go(func() error {
			dep, err := c.Verifier.VerifyFile(gctx, file)
			if err != nil {
				return err
			}
			results[i] = dep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var deps []types.FileDependency
	for _, dep := range results {
		if dep == nil {
			continue
		}
		deps = append(deps, *dep)
	}
	return deps, nil
}
