package ports

import "context"

// FileTypePort decides whether a file is an ELF object.
type FileTypePort interface {
	Tool() string
	IsBinaryLike(ctx context.Context, path string) (bool, error)
}

// LinkageInspectorPort reports the shared libraries a binary cannot resolve.
// Implementations are the interchangeable verification strategies.
type LinkageInspectorPort interface {
	Tool() string
	Inspect(ctx context.Context, path string) ([]string, error)
}
