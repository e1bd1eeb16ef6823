package core

import (
	"os"
	"path/filepath"
	"strings"
)

// nonBinaryExtensions are suffixes that never name an ELF object worth
// inspecting. Matching is case-sensitive.
var nonBinaryExtensions = map[string]struct{}{
	"a": {}, "png": {}, "la": {}, "ttf": {}, "gz": {}, "html": {}, "css": {},
	"h": {}, "c": {}, "cxx": {}, "xml": {}, "rgb": {}, "gif": {}, "wav": {},
	"ogg": {}, "ogv": {}, "avi": {}, "opus": {}, "mp3": {}, "po": {}, "txt": {},
	"jpg": {}, "jpeg": {}, "bmp": {}, "xcf": {}, "mo": {}, "rb": {}, "py": {},
	"lua": {}, "config": {}, "cfg": {}, "svg": {}, "desktop": {}, "conf": {},
	"pdf": {}, "xz": {},
}

// CandidateFilter is the cheap pre-filter run before the type probe.
type CandidateFilter struct {
	// RegularFile reports whether path names an existing regular file.
	RegularFile func(path string) bool
}

func NewCandidateFilter() CandidateFilter {
	return CandidateFilter{RegularFile: isRegularFile}
}

func (f CandidateFilter) IsCandidate(path string) bool {
	regular := f.RegularFile
	if regular == nil {
		regular = isRegularFile
	}
	if !regular(path) {
		return false
	}
	ext, ok := fileExtension(path)
	if !ok {
		return true
	}
	_, denied := nonBinaryExtensions[ext]
	return !denied
}

// fileExtension returns the text after the last dot of the base name.
// Dotfiles such as ".profile" have no extension.
func fileExtension(path string) (string, bool) {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return "", false
	}
	return base[idx+1:], true
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
