package policies

import (
	"path/filepath"
	"regexp"
	"strings"

	"pkg-linkcheck/internal/types"
)

// IgnorePolicy drops unresolved library names that are expected, either
// because the user listed them or because the package ships them itself.
type IgnorePolicy struct {
	literals map[string]struct{}
	patterns []*regexp.Regexp
}

// NewIgnorePolicy compiles the ignore patterns. Patterns are unanchored.
func NewIgnorePolicy(literals []string, patterns []string) (IgnorePolicy, error) {
	policy := IgnorePolicy{literals: map[string]struct{}{}}
	for _, literal := range literals {
		literal = strings.TrimSpace(literal)
		if literal == "" {
			continue
		}
		policy.literals[literal] = struct{}{}
	}
	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return IgnorePolicy{}, types.InvalidPatternError(pattern, err)
		}
		policy.patterns = append(policy.patterns, compiled)
	}
	return policy, nil
}

// Ignored reports whether library should be dropped for a package whose
// files have the given base names.
func (p IgnorePolicy) Ignored(library string, ownFiles map[string]struct{}) bool {
	if _, ok := p.literals[library]; ok {
		return true
	}
	if _, ok := ownFiles[filepath.Base(library)]; ok {
		return true
	}
	for _, pattern := range p.patterns {
		if pattern.MatchString(library) {
			return true
		}
	}
	return false
}

// Apply filters every file's libraries and drops files left with none.
// The input is not modified.
func (p IgnorePolicy) Apply(deps []types.FileDependency, ownFiles map[string]struct{}) []types.FileDependency {
	var kept []types.FileDependency
	for _, dep := range deps {
		var libraries []string
		for _, library := range dep.LibraryDependencies {
			if p.Ignored(library, ownFiles) {
				continue
			}
			libraries = append(libraries, library)
		}
		if len(libraries) == 0 {
			continue
		}
		kept = append(kept, types.FileDependency{
			FileName:            dep.FileName,
			LibraryDependencies: libraries,
		})
	}
	return kept
}

// BaseNames returns the set of base names of a package's files.
func BaseNames(files []string) map[string]struct{} {
	names := make(map[string]struct{}, len(files))
	for _, file := range files {
		trimmed := strings.TrimRight(file, "/")
		if trimmed == "" {
			continue
		}
		names[filepath.Base(trimmed)] = struct{}{}
	}
	return names
}
