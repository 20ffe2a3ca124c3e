package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"benchctl/internal/invoker"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	build  invoker.BuildSpec
	bench  invoker.CommandSpec
	called bool
	result invoker.ExecutionResult
	err    error
}

func (m *mockRunner) Run(ctx context.Context, build invoker.BuildSpec, bench invoker.CommandSpec) (invoker.ExecutionResult, error) {
	m.called = true
	m.build = build
	m.bench = bench
	return m.result, m.err
}

func restoreRunnerFunc() {
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner {
		return invoker.New(stdout, stderr, stdin)
	}
}

func setTestConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("dotnet_path", "dotnet")
	viper.Set("project", "benchmarks/Benchmarks.csproj")
	viper.Set("configuration", "Release")
	viper.Set("artifacts_dir", filepath.Join(t.TempDir(), "results"))
}

func execRunCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRunCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCmd_DryRun(t *testing.T) {
	setTestConfig(t)

	out, err := execRunCmd(t, "--target", "ringbuffer", "--export", "csv", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "dotnet run --project benchmarks/Benchmarks.csproj --configuration Release")
	assert.Contains(t, out, "--filter *RingBufferBenchmarks*")
	assert.Contains(t, out, "-- --exporters csv")
}

func TestRunCmd_Success(t *testing.T) {
	setTestConfig(t)
	defer restoreRunnerFunc()

	mock := &mockRunner{result: invoker.ExecutionResult{
		ExitCode:       0,
		Duration:       90 * time.Second,
		BuildSucceeded: true,
	}}
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner { return mock }

	out, err := execRunCmd(t, "--target", "deque")
	require.NoError(t, err)

	require.True(t, mock.called)
	assert.Equal(t, "dotnet", mock.build.Tool)
	assert.Equal(t, []string{"build", "--configuration", "Release", "benchmarks/Benchmarks.csproj"}, mock.build.Args)
	assert.Contains(t, mock.bench.Args, "--filter")
	assert.Contains(t, mock.bench.Args, "*DequeBenchmarks*")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "1:30")
}

func TestRunCmd_BuildFailurePropagatesExitCode(t *testing.T) {
	setTestConfig(t)
	defer restoreRunnerFunc()

	mock := &mockRunner{result: invoker.ExecutionResult{
		ExitCode:       2,
		BuildSucceeded: false,
	}}
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner { return mock }

	out, err := execRunCmd(t)
	require.Error(t, err)

	var ec *exitCodeError
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 2, ec.code, "build exit code forwarded verbatim")
	assert.Contains(t, out, "Build failed")
}

func TestRunCmd_RunFailurePropagatesExitCode(t *testing.T) {
	setTestConfig(t)
	defer restoreRunnerFunc()

	mock := &mockRunner{result: invoker.ExecutionResult{
		ExitCode:       3,
		Duration:       10 * time.Second,
		BuildSucceeded: true,
	}}
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner { return mock }

	out, err := execRunCmd(t, "--target", "quick")
	require.Error(t, err)

	var ec *exitCodeError
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 3, ec.code)
	assert.Contains(t, out, "exit code 3")
}

func TestRunCmd_RunnerErrorIsNotAnExitCode(t *testing.T) {
	setTestConfig(t)
	defer restoreRunnerFunc()

	mock := &mockRunner{err: errors.New("exec: \"dotnet\": executable file not found in $PATH")}
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner { return mock }

	_, err := execRunCmd(t)
	require.Error(t, err)

	var ec *exitCodeError
	assert.False(t, errors.As(err, &ec))
	assert.Contains(t, err.Error(), "failed to execute benchmark run")
}

func TestRunCmd_UnknownTarget(t *testing.T) {
	setTestConfig(t)

	_, err := execRunCmd(t, "--target", "hashmap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

func TestRunCmd_EndToEnd_RingBufferCsv(t *testing.T) {
	setTestConfig(t)
	defer restoreRunnerFunc()

	artifactsRoot := viper.GetString("artifacts_dir")
	require.NoError(t, os.MkdirAll(artifactsRoot, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(artifactsRoot, "RingBufferBenchmarks-report.csv"), []byte("Method,Mean\n"), 0644))

	mock := &mockRunner{result: invoker.ExecutionResult{
		ExitCode:       0,
		Duration:       time.Minute,
		BuildSucceeded: true,
	}}
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner { return mock }

	out, err := execRunCmd(t, "--target", "ringbuffer", "--export", "csv")
	require.NoError(t, err)

	assert.Contains(t, mock.bench.Args, "*RingBufferBenchmarks*")
	sep := -1
	for i, a := range mock.bench.Args {
		if a == "--" {
			sep = i
		}
	}
	require.GreaterOrEqual(t, sep, 0)
	assert.Equal(t, []string{"--exporters", "csv"}, mock.bench.Args[sep+1:sep+3])
	assert.Contains(t, out, "RingBufferBenchmarks-report.csv")
}

func TestRunCmd_CustomFilterAfterTargetFilter(t *testing.T) {
	setTestConfig(t)
	defer restoreRunnerFunc()

	mock := &mockRunner{result: invoker.ExecutionResult{ExitCode: 0, BuildSucceeded: true}}
	newRunnerFunc = func(stdout, stderr io.Writer, stdin io.Reader) invoker.Runner { return mock }

	_, err := execRunCmd(t, "--target", "orderedset", "--filter", "*Contains*")
	require.NoError(t, err)

	var filters []string
	for i, a := range mock.bench.Args {
		if a == "--filter" && i+1 < len(mock.bench.Args) {
			filters = append(filters, mock.bench.Args[i+1])
		}
	}
	assert.Equal(t, []string{"*OrderedSetBenchmarks*", "*Contains*"}, filters)
}
