package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkg-linkcheck/internal/adapters"
	"pkg-linkcheck/internal/core"
	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/types"
)

type Service struct {
	Locator   ports.ToolLocatorPort
	Packages  ports.PackageManagerPort
	Probe     ports.FileTypePort
	Inspector ports.LinkageInspectorPort
	Providers ports.ProviderLookupPort
	Filter    core.CandidateFilter
	Report    ports.ReportWriterPort
}

// NewService wires the host adapters selected by settings. Every adapter
// shares one command runner so the subprocess bound is process-wide.
func NewService(settings types.Settings) (Service, error) {
	runner := adapters.NewCommandRunnerAdapter(settings.Parallelism, settings.ToolTimeout)

	service := Service{
		Locator: adapters.NewToolLocatorAdapter(),
		Probe:   adapters.NewFileProbeAdapter(runner),
		Filter:  core.NewCandidateFilter(),
	}

	switch settings.Backend {
	case types.BackendPacman, "":
		service.Packages = adapters.NewPacmanAdapter(runner)
		service.Providers = adapters.NewPkgfileLookupAdapter(runner)
	case types.BackendDpkg:
		service.Packages = adapters.NewDpkgAdapter(runner)
		service.Providers = adapters.NewAptFileLookupAdapter(runner)
	default:
		return Service{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported package backend: %s", settings.Backend))
	}

	switch settings.Strategy {
	case types.StrategyLdd:
		service.Inspector = adapters.NewLddInspectorAdapter(runner)
	case types.StrategyReadelf:
		service.Inspector = adapters.NewReadelfInspectorAdapter(runner, adapters.NewSystemLibrarySearchPath())
	default:
		return Service{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported verification strategy: %s", settings.Strategy))
	}

	report, err := adapters.NewReportWriter(settings.Output)
	if err != nil {
		return Service{}, err
	}
	service.Report = report
	return service, nil
}
