// Package main is the entry point for pkg-linkcheck.
package main

import "pkg-linkcheck/internal/cli"

func main() {
	cli.Execute()
}
