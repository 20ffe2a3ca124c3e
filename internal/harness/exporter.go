package harness

import (
	"fmt"
	"strings"
)

// ExportFormat selects which exporters the harness should enable.
type ExportFormat int

const (
	// ExportNone disables exporters entirely.
	ExportNone ExportFormat = iota
	ExportCSV
	ExportJSON
	ExportHTML
	// ExportAll enables every known exporter.
	ExportAll
)

var exportNames = map[ExportFormat]string{
	ExportNone: "none",
	ExportCSV:  "csv",
	ExportJSON: "json",
	ExportHTML: "html",
	ExportAll:  "all",
}

// ArtifactExtensions are the file extensions the known exporters produce.
var ArtifactExtensions = []string{".csv", ".json", ".html"}

func (f ExportFormat) String() string {
	if name, ok := exportNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ExportFormat(%d)", int(f))
}

// ParseExportFormat converts a user-supplied format name into an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	for f, name := range exportNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return ExportNone, fmt.Errorf("unknown export format %q (valid: %s)", s, strings.Join(ExportFormatNames(), ", "))
}

// ExportFormats returns every format in listing order.
func ExportFormats() []ExportFormat {
	return []ExportFormat{ExportNone, ExportCSV, ExportJSON, ExportHTML, ExportAll}
}

// ExportFormatNames returns the valid format names in listing order.
func ExportFormatNames() []string {
	var names []string
	for _, f := range ExportFormats() {
		names = append(names, f.String())
	}
	return names
}

// Exporters returns the concrete exporter names a format enables.
// ExportNone yields nil.
func (f ExportFormat) Exporters() []string {
	switch f {
	case ExportNone:
		return nil
	case ExportCSV:
		return []string{"csv"}
	case ExportJSON:
		return []string{"json"}
	case ExportHTML:
		return []string{"html"}
	case ExportAll:
		return []string{"csv", "json", "html"}
	}
	return nil
}
