package types

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

func TestResolveGrouping(t *testing.T) {
	tests := []struct {
		name           string
		requested      Grouping
		showCandidates bool
		want           Grouping
	}{
		{
			name: "default without candidates",
			want: Grouping{ByFile: true, ByLibrary: true},
		},
		{
			name:           "default with candidates",
			showCandidates: true,
			want:           Grouping{ByFile: true, ByLibrary: true, ByContainingPackage: true},
		},
		{
			name:           "explicit grouping wins",
			requested:      Grouping{ByLibrary: true},
			showCandidates: true,
			want:           Grouping{ByLibrary: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveGrouping(tt.requested, tt.showCandidates))
		})
	}
}

func TestPackageHasIssues(t *testing.T) {
	pkg := NewPackage("foo")
	assert.False(t, pkg.HasIssues())
	pkg.FileDependencies = []FileDependency{{FileName: "/usr/bin/foo", LibraryDependencies: []string{"libbar.so.1"}}}
	assert.True(t, pkg.HasIssues())
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(MissingToolError("ldd", nil)))
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(ToolExecutionError("ldd", "", nil)))
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(InvalidPatternError("(", nil)))
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(IssuesFoundError(1)))
}
