// Package shared provides common utility functions used across multiple
// packages in the pkg-linkcheck codebase.
package shared

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

// Lines splits command output into trimmed, non-empty lines.
func Lines(output []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// FirstLine returns the first non-empty line of output, or "".
func FirstLine(output []byte) string {
	lines := Lines(output)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// SortedUnique returns the distinct values in ascending order.
func SortedUnique(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return SortedKeys(set)
}

// SortedKeys returns the keys of a string set in ascending order.
func SortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
