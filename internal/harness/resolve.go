// Package harness compiles a benchmark selection into the argument vector of
// the benchmark harness process. Resolution is a pure mapping: no environment
// reads, no filesystem access, no randomness.
package harness

import "strings"

// Selection is the user's choice of what to measure and how to export it.
type Selection struct {
	Target Target
	// Filter is an optional free-text method-name glob. Empty means absent.
	Filter string
	Export ExportFormat
}

// Resolve composes the harness argument vector for a selection.
//
// The base tokens (run subcommand, project reference, build configuration)
// always come first; their order is significant to the consumer. A custom
// filter is appended after any target-implied filter pair, unmodified. When
// both are present the harness sees two --filter pairs; whether it treats
// them as last-wins or union is the harness's own contract and is not
// resolved here. Exporter tokens, when enabled, follow the "--" separator
// that ends harness-level arguments.
//
// For a fixed input the output is identical across calls.
func Resolve(sel Selection, project, configuration string) []string {
	args := []string{"run", "--project", project, "--configuration", configuration}

	switch sel.Target {
	case TargetAll:
		// No filter: run everything.
	case TargetQuick:
		// The only variant that emits two option groups.
		args = append(args, "--filter", sel.Target.FilterGlob(), "--job", "short")
	case TargetRingBuffer, TargetDeque, TargetPriorityQueue, TargetOrderedSet:
		args = append(args, "--filter", sel.Target.FilterGlob())
	}

	if sel.Filter != "" {
		args = append(args, "--filter", sel.Filter)
	}

	if exporters := sel.Export.Exporters(); len(exporters) > 0 {
		args = append(args, "--", "--exporters", strings.Join(exporters, ","))
	}

	return args
}
