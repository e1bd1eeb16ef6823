package adapters

import (
	"context"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
)

const (
	pkgfileTool = "pkgfile"
	aptFileTool = "apt-file"

	providerMemoSize = 1024
)

// ProviderLookupAdapter queries a file index for packages shipping a
// library. Answers are memoized for the lifetime of the adapter so a
// library missing from several packages is looked up once per run.
type ProviderLookupAdapter struct {
	Runner ports.CommandRunnerPort
	tool   string
	args   func(library string) []string
	parse  func(output []byte) []string
	memo   *lru.Cache[string, []string]
	calls  *singleflight.Group
}

// NewPkgfileLookupAdapter uses pkgfile(1); results are "repo/package".
func NewPkgfileLookupAdapter(runner ports.CommandRunnerPort) ProviderLookupAdapter {
	return newProviderLookupAdapter(runner, pkgfileTool,
		func(library string) []string { return []string{library} },
		shared.Lines,
	)
}

// NewAptFileLookupAdapter uses apt-file(1), matching the library as the
// final path component.
func NewAptFileLookupAdapter(runner ports.CommandRunnerPort) ProviderLookupAdapter {
	return newProviderLookupAdapter(runner, aptFileTool,
		func(library string) []string {
			return []string{"search", "-l", "-x", "/" + regexp.QuoteMeta(library) + "$"}
		},
		shared.Lines,
	)
}

func newProviderLookupAdapter(runner ports.CommandRunnerPort, tool string, args func(string) []string, parse func([]byte) []string) ProviderLookupAdapter {
	memo, err := lru.New[string, []string](providerMemoSize)
	if err != nil {
		panic(err)
	}
	return ProviderLookupAdapter{
		Runner: runner,
		tool:   tool,
		args:   args,
		parse:  parse,
		memo:   memo,
		calls:  &singleflight.Group{},
	}
}

func (a ProviderLookupAdapter) Tool() string {
	return a.tool
}

func (a ProviderLookupAdapter) LookupProvidingPackages(ctx context.Context, library string) ([]string, error) {
	library = strings.TrimSpace(library)
	if cached, ok := a.memo.Get(library); ok {
		return cloneStrings(cached), nil
	}
	value, err, _ := a.calls.Do(library, func() (any, error) {
		result, err := a.Runner.Run(ctx, a.tool, a.args(library)...)
		if err != nil {
			return nil, err
		}
		if noMatch(result) {
			a.memo.Add(library, nil)
			return []string(nil), nil
		}
		if result.ExitCode != 0 {
			return nil, exitFailure(a.tool, result)
		}
		packages := shared.SortedUnique(a.parse(result.Stdout))
		a.memo.Add(library, packages)
		return packages, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneStrings(value.([]string)), nil
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}

var _ ports.ProviderLookupPort = ProviderLookupAdapter{}
