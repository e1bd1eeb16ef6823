package core

import (
	"context"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/shared"
	"pkg-linkcheck/internal/types"
)

// Verifier runs the candidate filter, the type probe and the selected
// linkage inspector against a single file.
type Verifier struct {
	Filter    CandidateFilter
	Probe     ports.FileTypePort
	Inspector ports.LinkageInspectorPort
}

func NewVerifier(filter CandidateFilter, probe ports.FileTypePort, inspector ports.LinkageInspectorPort) Verifier {
	return Verifier{Filter: filter, Probe: probe, Inspector: inspector}
}

// VerifyFile returns nil when the file is not an ELF candidate or resolves
// every library it needs.
func (v Verifier) VerifyFile(ctx context.Context, path string) (*types.FileDependency, error) {
	if !v.Filter.IsCandidate(path) {
		return nil, nil
	}
	binary, err := v.Probe.IsBinaryLike(ctx, path)
	if err != nil {
		return nil, err
	}
	if !binary {
		return nil, nil
	}
	missing, err := v.Inspector.Inspect(ctx, path)
	if err != nil {
		return nil, err
	}
	libraries := shared.SortedUnique(missing)
	if len(libraries) == 0 {
		return nil, nil
	}
	return &types.FileDependency{FileName: path, LibraryDependencies: libraries}, nil
}
