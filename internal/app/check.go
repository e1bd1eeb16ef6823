package app

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"pkg-linkcheck/internal/core"
	"pkg-linkcheck/internal/policies"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

// CheckTools verifies that every program the run needs is installed.
func (s Service) CheckTools(showCandidates bool) error {
	tools := []string{s.Packages.Tool(), s.Probe.Tool(), s.Inspector.Tool()}
	if showCandidates {
		tools = append(tools, s.Providers.Tool())
	}
	for _, tool := range tools {
		if err := s.Locator.Locate(tool); err != nil {
			return err
		}
	}
	return nil
}

// Check verifies the requested packages and returns them sorted by name.
// Any failure discards all results.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	if err := s.CheckTools(req.ShowCandidates); err != nil {
		return CheckResult{}, err
	}
	policy, err := policies.NewIgnorePolicy(req.IgnoreLibraries, req.IgnorePatterns)
	if err != nil {
		return CheckResult{}, err
	}
	names, err := s.packageNames(ctx, req)
	if err != nil {
		return CheckResult{}, err
	}
	if len(names) == 0 && !req.AllPackages {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no packages to check: pass package names or --all-packages")
	}

	checker := core.PackageChecker{
		Packages:       s.Packages,
		Verifier:       core.NewVerifier(s.Filter, s.Probe, s.Inspector),
		Policy:         policy,
		Aggregator:     core.NewAggregator(s.Providers, req.Parallelism),
		ShowCandidates: req.ShowCandidates,
		Parallelism:    req.Parallelism,
	}

	started := time.Now()
	results := make([]types.Package, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(req.Parallelism))
	for i, name := range names {
		g.Go(func() error {
			pkg, err := checker.Check(gctx, name)
			if err != nil {
				return err
			}
			results[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CheckResult{}, err
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	result := CheckResult{Packages: results}
	log.Ctx(ctx).Info().
		Int("packages", len(results)).
		Int("with_issues", result.IssuesCount()).
		Dur("elapsed", time.Since(started)).
		Msg("check finished")
	return result, nil
}

func (s Service) packageNames(ctx context.Context, req CheckRequest) ([]string, error) {
	var names []string
	if req.AllPackages {
		all, err := s.Packages.ListAllLocalPackages(ctx)
		if err != nil {
			return nil, err
		}
		names = all
	} else {
		for _, name := range req.Packages {
			names = append(names, strings.TrimSpace(name))
		}
	}
	var cleaned []string
	for _, name := range names {
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return shared.SortedUnique(cleaned), nil
}

func parallelism(value int) int {
	if value <= 0 {
		return runtime.NumCPU()
	}
	return value
}
