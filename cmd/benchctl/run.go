package main

import (
	"fmt"
	"io"
	"strings"

	"benchctl/internal/harness"
	"benchctl/internal/invoker"
	"benchctl/internal/report"
	"benchctl/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRunnerFunc allows mocking the subprocess runner in tests.
var newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner {
	return invoker.New(stdout, stderr, stdin)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the project and run the selected benchmarks",
		Long: `Builds the benchmark project, then runs the harness with the arguments
composed from the selected target, export format and optional method filter.

The build runs first; if it fails, the benchmarks are not started and the
build tool's exit code becomes benchctl's exit code. Likewise a failing
benchmark run terminates benchctl with the harness's own exit code.`,
		RunE: runBenchmarks,
	}

	cmd.Flags().StringP("target", "t", "all", "Benchmark target ("+strings.Join(harness.TargetNames(), ", ")+")")
	cmd.Flags().StringP("export", "e", "none", "Export format ("+strings.Join(harness.ExportFormatNames(), ", ")+")")
	cmd.Flags().StringP("filter", "f", "", "Additional method-name filter glob, passed through as-is")
	cmd.Flags().BoolP("interactive", "i", false, "Pick target and export format interactively")
	cmd.Flags().Bool("dry-run", false, "Print the composed command without executing it")

	return cmd
}

var runCmd = newRunCmd()

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	targetName, _ := cmd.Flags().GetString("target")
	exportName, _ := cmd.Flags().GetString("export")
	customFilter, _ := cmd.Flags().GetString("filter")
	interactive, _ := cmd.Flags().GetBool("interactive")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if interactive {
		var err error
		targetName, exportName, err = promptSelection(targetName, exportName)
		if err != nil {
			return err
		}
	}

	target, err := harness.ParseTarget(targetName)
	if err != nil {
		return err
	}
	export, err := harness.ParseExportFormat(exportName)
	if err != nil {
		return err
	}

	sel := harness.Selection{Target: target, Filter: customFilter, Export: export}

	dotnet := viper.GetString("dotnet_path")
	project := viper.GetString("project")
	configuration := viper.GetString("configuration")
	artifactsRoot := viper.GetString("artifacts_dir")

	benchArgs := harness.Resolve(sel, project, configuration)

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), dotnet+" "+strings.Join(benchArgs, " "))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Header(fmt.Sprintf("benchctl · target=%s export=%s", target, export)))
	fmt.Fprintf(cmd.OutOrStdout(), "Running: %s %s\n", dotnet, strings.Join(benchArgs, " "))

	runner := newRunnerFunc(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin())
	result, err := runner.Run(cmd.Context(),
		invoker.BuildSpec{Tool: dotnet, Args: []string{"build", "--configuration", configuration, project}},
		invoker.CommandSpec{Tool: dotnet, Args: benchArgs},
	)
	if err != nil {
		return fmt.Errorf("failed to execute benchmark run: %w", err)
	}

	rep := report.New(cmd.OutOrStdout())
	if _, err := rep.Report(result, export, artifactsRoot); err != nil {
		return err
	}

	if result.ExitCode != 0 {
		if !result.BuildSucceeded {
			return &exitCodeError{code: result.ExitCode, msg: "build failed"}
		}
		return &exitCodeError{code: result.ExitCode, msg: "benchmark run failed"}
	}
	return nil
}
