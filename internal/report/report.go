// Package report summarizes an execution result and enumerates the artifact
// files a run produced.
package report

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"benchctl/internal/harness"
	"benchctl/internal/invoker"
	"benchctl/internal/ui"
)

// ArtifactRef is a discovered exporter output file.
type ArtifactRef struct {
	Path string
	Ext  string
}

// Reporter writes the run summary to Out.
type Reporter struct {
	Out io.Writer
}

func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Report prints the outcome of a run. On success with exporters enabled it
// scans artifactsRoot for known artifact types and returns them; on failure
// no scan happens and the caller is expected to propagate the exit code
// verbatim. Artifact order is whatever the filesystem traversal yields.
func (r *Reporter) Report(result invoker.ExecutionResult, export harness.ExportFormat, artifactsRoot string) ([]ArtifactRef, error) {
	elapsed := FormatDuration(result.Duration)

	if !result.BuildSucceeded {
		fmt.Fprintln(r.Out, ui.BuildFailure(result.ExitCode, elapsed))
		return nil, nil
	}
	if result.ExitCode != 0 {
		fmt.Fprintln(r.Out, ui.RunFailure(result.ExitCode, elapsed))
		return nil, nil
	}

	fmt.Fprintln(r.Out, ui.Success(elapsed))

	if export == harness.ExportNone {
		return nil, nil
	}

	artifacts, err := ScanArtifacts(artifactsRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan artifacts under %s: %w", artifactsRoot, err)
	}

	if len(artifacts) == 0 {
		fmt.Fprintln(r.Out, ui.Tip(fmt.Sprintf("no artifacts found under %s", artifactsRoot)))
		return nil, nil
	}

	fmt.Fprintf(r.Out, "\nArtifacts (%d):\n", len(artifacts))
	for _, a := range artifacts {
		fmt.Fprintln(r.Out, ui.Artifact(a.Path))
	}
	fmt.Fprintln(r.Out, ui.Tip("open the .html report in a browser for the full table"))

	return artifacts, nil
}

// ScanArtifacts walks root recursively and collects files whose extension is
// one of the known exporter outputs. A missing root yields an empty list, not
// an error: a run with no exports simply never creates the directory.
func ScanArtifacts(root string) ([]ArtifactRef, error) {
	var artifacts []ArtifactRef

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		for _, known := range harness.ArtifactExtensions {
			if ext == known {
				artifacts = append(artifacts, ArtifactRef{Path: path, Ext: ext})
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// FormatDuration renders a wall-clock duration as minutes:seconds.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
