package app

import (
	"io"

	"pkg-linkcheck/internal/types"
)

// WriteReport renders a finished check. Nothing is written for failed runs.
func (s Service) WriteReport(w io.Writer, result CheckResult, grouping types.Grouping) error {
	return s.Report.Write(w, result.Packages, grouping)
}
