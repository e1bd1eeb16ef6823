package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg-linkcheck/internal/ports"
)

func TestPacmanListOwnedFiles(t *testing.T) {
	runner := newScriptedRunner().
		on(stdout("/usr/\n/usr/bin/\n/usr/bin/foo\n\n/usr/lib/libbar.so.1\n"), "pacman", "-Qql", "foo")
	adapter := NewPacmanAdapter(runner)

	files, err := adapter.ListOwnedFiles(t.Context(), "foo")
	require.NoError(t, err)
	want := []string{"/usr/", "/usr/bin/", "/usr/bin/foo", "/usr/lib/libbar.so.1"}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
}

func TestPacmanListOwnedFilesUnknownPackage(t *testing.T) {
	runner := newScriptedRunner().on(ports.CommandResult{
		Stderr:   []byte("error: package 'nope' was not found\n"),
		ExitCode: 1,
	}, "pacman", "-Qql", "nope")
	adapter := NewPacmanAdapter(runner)

	_, err := adapter.ListOwnedFiles(t.Context(), "nope")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "package 'nope' was not found")
}

func TestPacmanListAllLocalPackages(t *testing.T) {
	runner := newScriptedRunner().on(stdout("yay\nparu-bin\n"), "pacman", "-Qqm")
	packages, err := NewPacmanAdapter(runner).ListAllLocalPackages(t.Context())
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"yay", "paru-bin"}, packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
}

func TestPacmanListAllLocalPackagesNone(t *testing.T) {
	runner := newScriptedRunner().on(ports.CommandResult{ExitCode: 1}, "pacman", "-Qqm")
	packages, err := NewPacmanAdapter(runner).ListAllLocalPackages(t.Context())
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestPacmanQueryVersion(t *testing.T) {
	runner := newScriptedRunner().
		on(stdout("foo 1:2.3.4-1\n"), "pacman", "-Q", "foo").
		on(stdout("bar r42.g1234-2\n"), "pacman", "-Q", "bar").
		on(stdout("\n"), "pacman", "-Q", "baz")
	adapter := NewPacmanAdapter(runner)

	version, err := adapter.QueryVersion(t.Context(), "foo")
	require.NoError(t, err)
	assert.Equal(t, "1:2.3.4-1", version)

	version, err = adapter.QueryVersion(t.Context(), "bar")
	require.NoError(t, err)
	assert.Equal(t, "r42.g1234-2", version)

	_, err = adapter.QueryVersion(t.Context(), "baz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no version reported for baz")
}
