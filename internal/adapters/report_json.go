package adapters

import (
	"encoding/json"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/types"
)

type JSONReportAdapter struct{}

func NewJSONReportAdapter() JSONReportAdapter {
	return JSONReportAdapter{}
}

func (a JSONReportAdapter) Write(w io.Writer, packages []types.Package, grouping types.Grouping) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(buildReportView(packages, grouping)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write json report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportWriterPort = JSONReportAdapter{}
