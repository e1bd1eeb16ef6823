package ports

import (
	"io"

	"pkg-linkcheck/internal/types"
)

// ReportWriterPort renders verified packages.
type ReportWriterPort interface {
	Write(w io.Writer, packages []types.Package, grouping types.Grouping) error
}
