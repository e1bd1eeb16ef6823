package ports

import "context"

// PackageManagerPort queries the local package database.
type PackageManagerPort interface {
	// Tool is the program the backend shells out to.
	Tool() string
	ListAllLocalPackages(ctx context.Context) ([]string, error)
	ListOwnedFiles(ctx context.Context, pkg string) ([]string, error)
	QueryVersion(ctx context.Context, pkg string) (string, error)
}

// ProviderLookupPort finds packages that may ship a given library.
type ProviderLookupPort interface {
	Tool() string
	LookupProvidingPackages(ctx context.Context, library string) ([]string, error)
}
