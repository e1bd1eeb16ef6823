package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/types"
)

type packageView struct {
	PackageName         string                    `json:"package_name" yaml:"package_name"`
	Version             string                    `json:"version,omitempty" yaml:"version,omitempty"`
	FileDependencies    *[]fileDependencyView     `json:"file_dependencies,omitempty" yaml:"file_dependencies,omitempty"`
	LibraryRequirements *[]libraryRequirementView `json:"library_requirements,omitempty" yaml:"library_requirements,omitempty"`
	PackagesContaining  *[]packagesContainingView `json:"packages_containing,omitempty" yaml:"packages_containing,omitempty"`
}

type fileDependencyView struct {
	FileName            string   `json:"file_name" yaml:"file_name"`
	LibraryDependencies []string `json:"library_dependencies" yaml:"library_dependencies"`
}

type libraryRequirementView struct {
	LibraryName    string   `json:"library_name" yaml:"library_name"`
	FilesRequiring []string `json:"files_requiring" yaml:"files_requiring"`
}

type packagesContainingView struct {
	LibraryName        string   `json:"library_name" yaml:"library_name"`
	PackagesContaining []string `json:"packages_containing" yaml:"packages_containing"`
}

// buildReportView maps packages to the serialized report shape. Disabled
// groupings are omitted; enabled but empty ones serialize as empty lists.
func buildReportView(packages []types.Package, grouping types.Grouping) []packageView {
	views := make([]packageView, 0, len(packages))
	for _, pkg := range packages {
		view := packageView{PackageName: pkg.Name, Version: pkg.Version}
		if grouping.ByFile {
			deps := make([]fileDependencyView, 0, len(pkg.FileDependencies))
			for _, dep := range pkg.FileDependencies {
				deps = append(deps, fileDependencyView{
					FileName:            dep.FileName,
					LibraryDependencies: nonNil(dep.LibraryDependencies),
				})
			}
			view.FileDependencies = &deps
		}
		if grouping.ByLibrary {
			reqs := make([]libraryRequirementView, 0, len(pkg.LibraryRequirements))
			for _, req := range pkg.LibraryRequirements {
				reqs = append(reqs, libraryRequirementView{
					LibraryName:    req.LibraryName,
					FilesRequiring: nonNil(req.FilesRequiring),
				})
			}
			view.LibraryRequirements = &reqs
		}
		if grouping.ByContainingPackage {
			containing := make([]packagesContainingView, 0, len(pkg.PackagesContaining))
			for _, entry := range pkg.PackagesContaining {
				containing = append(containing, packagesContainingView{
					LibraryName:        entry.LibraryName,
					PackagesContaining: nonNil(entry.Packages),
				})
			}
			view.PackagesContaining = &containing
		}
		views = append(views, view)
	}
	return views
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// NewReportWriter returns the writer for an output format.
func NewReportWriter(format types.OutputFormat) (ports.ReportWriterPort, error) {
	switch format {
	case types.OutputFormatConsole, "":
		return NewConsoleReportAdapter(), nil
	case types.OutputFormatJSON:
		return NewJSONReportAdapter(), nil
	case types.OutputFormatYAML:
		return NewYAMLReportAdapter(), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", format))
	}
}
