package types

// Package is the verification record of one installed package.
type Package struct {
	Name                string
	Version             string
	FileDependencies    []FileDependency
	LibraryRequirements []LibraryRequired
	PackagesContaining  []PackagesContaining
}

// FileDependency lists the libraries a single file fails to resolve.
type FileDependency struct {
	FileName            string
	LibraryDependencies []string
}

// LibraryRequired lists the files of one package that fail to resolve a library.
type LibraryRequired struct {
	LibraryName    string
	FilesRequiring []string
}

// PackagesContaining lists the packages that may provide a missing library.
type PackagesContaining struct {
	LibraryName string
	Packages    []string
}

func NewPackage(name string) Package {
	return Package{Name: name}
}

// HasIssues reports whether any file of the package has unresolved libraries.
func (p Package) HasIssues() bool {
	return len(p.FileDependencies) > 0
}
