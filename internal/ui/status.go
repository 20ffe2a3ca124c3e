package ui

import "fmt"

// Header renders the run banner shown before the harness starts.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Success renders the success line with the elapsed time.
func Success(elapsed string) string {
	return successStyle.Render("✓ Benchmark run completed") + tipStyle.Render(fmt.Sprintf(" (%s)", elapsed))
}

// BuildFailure renders the build-failed line with the elapsed time.
func BuildFailure(exitCode int, elapsed string) string {
	return failureStyle.Render(fmt.Sprintf("✗ Build failed (exit code %d)", exitCode)) +
		tipStyle.Render(fmt.Sprintf(" (%s)", elapsed))
}

// RunFailure renders the benchmark-failed line with the elapsed time.
func RunFailure(exitCode int, elapsed string) string {
	return failureStyle.Render(fmt.Sprintf("✗ Benchmark run failed (exit code %d)", exitCode)) +
		tipStyle.Render(fmt.Sprintf(" (%s)", elapsed))
}

// Artifact renders a single discovered artifact path.
func Artifact(path string) string {
	return artifactStyle.Render(path)
}

// Tip renders a dim hint line.
func Tip(text string) string {
	return tipStyle.Render("tip: " + text)
}
