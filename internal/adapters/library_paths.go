package adapters

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const ldSoConf = "/etc/ld.so.conf"

var defaultLibraryDirs = []string{"/lib", "/lib64", "/usr/lib", "/usr/lib64"}

// LibrarySearchPath is the set of directories the dynamic loader consults
// beyond a binary's own rpath/runpath.
type LibrarySearchPath struct {
	Dirs   []string
	Exists func(path string) bool
}

// NewSystemLibrarySearchPath collects LD_LIBRARY_PATH, the ld.so.conf
// hierarchy and the loader's built-in directories.
func NewSystemLibrarySearchPath() LibrarySearchPath {
	var dirs []string
	dirs = append(dirs, splitPathList(os.Getenv("LD_LIBRARY_PATH"))...)
	dirs = append(dirs, readLdSoConf(ldSoConf, map[string]struct{}{})...)
	dirs = append(dirs, defaultLibraryDirs...)
	return LibrarySearchPath{
		Dirs:   uniqueDirs(dirs),
		Exists: fileExists,
	}
}

// Resolves reports whether needed can be found in extra or the search path.
// Names containing a slash are taken as paths.
func (p LibrarySearchPath) Resolves(needed string, extra []string) bool {
	exists := p.Exists
	if exists == nil {
		exists = fileExists
	}
	if strings.Contains(needed, "/") {
		return exists(needed)
	}
	for _, dir := range extra {
		if exists(filepath.Join(dir, needed)) {
			return true
		}
	}
	for _, dir := range p.Dirs {
		if exists(filepath.Join(dir, needed)) {
			return true
		}
	}
	return false
}

// readLdSoConf returns the directories of an ld.so.conf file, following
// include directives. seen guards against include cycles.
func readLdSoConf(path string, seen map[string]struct{}) []string {
	if _, ok := seen[path]; ok {
		return nil
	}
	seen[path] = struct{}{}
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var dirs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "include"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			for _, pattern := range strings.Fields(rest) {
				if !filepath.IsAbs(pattern) {
					pattern = filepath.Join(filepath.Dir(path), pattern)
				}
				matches, err := filepath.Glob(pattern)
				if err != nil {
					continue
				}
				for _, match := range matches {
					dirs = append(dirs, readLdSoConf(match, seen)...)
				}
			}
			continue
		}
		// hwcap lines and "dir=TYPE" suffixes are not directories.
		if strings.HasPrefix(line, "hwcap") {
			continue
		}
		for _, field := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ':' || r == ',' || r == ' ' || r == '\t'
		}) {
			if idx := strings.Index(field, "="); idx >= 0 {
				field = field[:idx]
			}
			if filepath.IsAbs(field) {
				dirs = append(dirs, field)
			}
		}
	}
	return dirs
}

func splitPathList(value string) []string {
	var dirs []string
	for _, dir := range strings.Split(value, ":") {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

func uniqueDirs(dirs []string) []string {
	seen := map[string]struct{}{}
	var result []string
	for _, dir := range dirs {
		clean := filepath.Clean(dir)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		result = append(result, clean)
	}
	return result
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
