package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/charmbracelet/lipgloss"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/types"
)

const consoleRule = "========================================"

// ConsoleReportAdapter prints a human-readable report. Styling is only
// applied when the writer is a color-capable terminal.
type ConsoleReportAdapter struct{}

func NewConsoleReportAdapter() ConsoleReportAdapter {
	return ConsoleReportAdapter{}
}

func (a ConsoleReportAdapter) Write(w io.Writer, packages []types.Package, grouping types.Grouping) error {
	renderer := lipgloss.NewRenderer(w)
	header := renderer.NewStyle().Bold(true)
	subject := renderer.NewStyle().Foreground(lipgloss.Color("3"))

	var b strings.Builder
	for i, pkg := range packages {
		if i != 0 {
			b.WriteString("\n")
		}
		title := "Package: " + pkg.Name
		if pkg.Version != "" {
			title += " " + pkg.Version
		}
		b.WriteString(consoleRule + "\n")
		b.WriteString(header.Render(title) + "\n")
		b.WriteString(consoleRule + "\n")
		if grouping.ByFile {
			for _, dep := range pkg.FileDependencies {
				fmt.Fprintf(&b, "\nelf file %s is missing:\n", subject.Render(quote(dep.FileName)))
				writeIndented(&b, dep.LibraryDependencies)
			}
		}
		if grouping.ByLibrary {
			for _, req := range pkg.LibraryRequirements {
				fmt.Fprintf(&b, "\nlibrary %s is required by:\n", subject.Render(quote(req.LibraryName)))
				writeIndented(&b, req.FilesRequiring)
			}
		}
		if grouping.ByContainingPackage {
			for _, entry := range pkg.PackagesContaining {
				fmt.Fprintf(&b, "\nlibrary %s is packaged in:\n", subject.Render(quote(entry.LibraryName)))
				writeIndented(&b, entry.Packages)
			}
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write console report").
			WithCause(err)
	}
	return nil
}

func quote(value string) string {
	return `"` + value + `"`
}

func writeIndented(b *strings.Builder, values []string) {
	for _, value := range values {
		b.WriteString("\t" + value + "\n")
	}
}

var _ ports.ReportWriterPort = ConsoleReportAdapter{}
