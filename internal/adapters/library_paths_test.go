package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLdSoConfFollowsIncludes(t *testing.T) {
	root := t.TempDir()
	confDir := filepath.Join(root, "ld.so.conf.d")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	main := filepath.Join(root, "ld.so.conf")
	require.NoError(t, os.WriteFile(main, []byte("# system\ninclude ld.so.conf.d/*.conf\n/opt/main/lib\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "a.conf"), []byte("/usr/lib/x86_64-linux-gnu\n/usr/local/lib # local\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "b.conf"), []byte("include "+main+"\nhwcap 0 nosegneg\n/opt/b=libc6\n"), 0o644))

	got := readLdSoConf(main, map[string]struct{}{})
	want := []string{"/usr/lib/x86_64-linux-gnu", "/usr/local/lib", "/opt/b", "/opt/main/lib"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected dirs (-want +got):\n%s", diff)
	}
}

func TestReadLdSoConfMissingFile(t *testing.T) {
	assert.Empty(t, readLdSoConf(filepath.Join(t.TempDir(), "absent.conf"), map[string]struct{}{}))
}

func TestLibrarySearchPathResolves(t *testing.T) {
	root := t.TempDir()
	libDir := filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "libfound.so.1"), nil, 0o644))

	searchPath := LibrarySearchPath{Dirs: []string{libDir}}
	assert.True(t, searchPath.Resolves("libfound.so.1", nil))
	assert.False(t, searchPath.Resolves("libgone.so.1", nil))
	assert.True(t, searchPath.Resolves(filepath.Join(libDir, "libfound.so.1"), nil))

	empty := LibrarySearchPath{}
	assert.True(t, empty.Resolves("libfound.so.1", []string{libDir}))
}

func TestUniqueDirs(t *testing.T) {
	got := uniqueDirs([]string{"/usr/lib/", "/usr/lib", "/lib", "/usr/lib/../lib"})
	assert.Equal(t, []string{"/usr/lib", "/lib"}, got)
}
