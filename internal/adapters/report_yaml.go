package adapters

import (
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkg-linkcheck/internal/ports"
	"pkg-linkcheck/internal/types"
)

type YAMLReportAdapter struct{}

func NewYAMLReportAdapter() YAMLReportAdapter {
	return YAMLReportAdapter{}
}

func (a YAMLReportAdapter) Write(w io.Writer, packages []types.Package, grouping types.Grouping) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(buildReportView(packages, grouping)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write yaml report").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to flush yaml report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportWriterPort = YAMLReportAdapter{}
