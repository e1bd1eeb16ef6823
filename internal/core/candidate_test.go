package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExtension(t *testing.T) {
	tests := []struct {
		path   string
		ext    string
		hasExt bool
	}{
		{path: "/usr/lib/libfoo.so", ext: "so", hasExt: true},
		{path: "/usr/lib/libfoo.so.1", ext: "1", hasExt: true},
		{path: "/usr/bin/foo", hasExt: false},
		{path: "/etc/skel/.profile", hasExt: false},
		{path: "/usr/share/doc/README.", ext: "", hasExt: true},
		{path: "/usr/share/foo.d/bin", hasExt: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ext, ok := fileExtension(tt.path)
			assert.Equal(t, tt.hasExt, ok)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestCandidateFilterExtensions(t *testing.T) {
	filter := CandidateFilter{RegularFile: allRegular}
	tests := []struct {
		path string
		want bool
	}{
		{path: "/usr/bin/foo", want: true},
		{path: "/usr/lib/libfoo.so", want: true},
		{path: "/usr/lib/libfoo.so.1.2.3", want: true},
		{path: "/usr/lib/python3/site-packages/_mod.cpython-312.so", want: true},
		{path: "/usr/lib/libfoo.a", want: false},
		{path: "/usr/share/icons/foo.png", want: false},
		{path: "/usr/share/doc/foo.pdf", want: false},
		{path: "/usr/bin/foo.py", want: false},
		{path: "/usr/share/foo/PICTURE.PNG", want: true},
		{path: "/usr/share/man/man1/foo.1.gz", want: false},
		{path: "/etc/foo.conf", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.IsCandidate(tt.path))
		})
	}
}

func TestCandidateFilterRequiresRegularFile(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "foo")
	require.NoError(t, os.WriteFile(binary, []byte("\x7fELF"), 0o755))
	link := filepath.Join(dir, "foo-link")
	require.NoError(t, os.Symlink(binary, link))

	filter := NewCandidateFilter()
	assert.True(t, filter.IsCandidate(binary))
	assert.True(t, filter.IsCandidate(link), "symlinks to regular files are followed")
	assert.False(t, filter.IsCandidate(dir), "directories are skipped")
	assert.False(t, filter.IsCandidate(filepath.Join(dir, "absent")))
}
