package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// JSONFormatter writes a routing report as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON report formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the report to the given writer.
func (f *JSONFormatter) Format(w io.Writer, report *interfaces.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	return nil
}
