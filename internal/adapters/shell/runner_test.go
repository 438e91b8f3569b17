package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcell/internal/adapters/shell"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/dcell/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_CombinedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	out, err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2 >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", string(out))
}

func TestRunner_Run_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0o600))

	out, err := runner.Run(context.Background(), domain.Command{Name: "ls", Dir: dir})
	require.NoError(t, err)
	assert.Contains(t, string(out), "marker")
}

func TestRunner_Run_Environment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	out, err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $MY_TEST_VAR"},
		Env:  []string{"MY_TEST_VAR=test-value-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "test-value-123\n", string(out))
}

func TestRunner_Run_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo 'cell.d(3): Error: undefined identifier' >&2; exit 42"},
	})
	require.Error(t, err)
	assert.Contains(t, string(out), "undefined identifier")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 42, exitErr.ExitCode())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	meta := zErr.Metadata()
	assert.Equal(t, 42, meta["exit_code"])
	assert.Contains(t, meta["output"], "undefined identifier")
}

func TestRunner_Run_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	_, err := runner.Run(context.Background(), domain.Command{Name: "nonexistent-command-xyz123"})
	require.Error(t, err)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	_, err := runner.Run(context.Background(), domain.Command{})
	require.Error(t, err)
}

func TestRunner_Run_HermeticPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	binDir := t.TempDir()
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "fake-dub"), []byte("#!/bin/sh\necho success\n"), 0o700))

	out, err := runner.Run(context.Background(), domain.Command{
		Name: "fake-dub",
		Env:  []string{"PATH=" + binDir},
	})
	require.NoError(t, err)
	assert.Equal(t, "success\n", string(out))
}

func TestRunner_Run_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVertex := mocks.NewMockVertex(ctrl)

	var stdoutBuf bytes.Buffer
	var stderrBuf bytes.Buffer
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	out, err := runner.Run(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello to stdout; echo hello to stderr >&2"},
	})
	require.NoError(t, err)

	assert.Contains(t, stdoutBuf.String(), "hello to stdout")
	assert.Contains(t, stderrBuf.String(), "hello to stderr")
	assert.Contains(t, string(out), "hello to stdout")
	assert.Contains(t, string(out), "hello to stderr")
}

func TestRunner_Run_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/home/u", "CC=gcc"},
		[]string{"PATH=/opt/dlang/bin", "CC=clang"},
	)

	assert.Equal(t, []string{"CC=clang", "HOME=/home/u", "PATH=/opt/dlang/bin" + string(os.PathListSeparator) + "/usr/bin"}, env)
}

func TestLookPath(t *testing.T) {
	binDir := t.TempDir()
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "tool"), []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "data"), []byte("x"), 0o600))

	got, err := shell.LookPath("tool", []string{"PATH=" + binDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(binDir, "tool"), got)

	_, err = shell.LookPath("data", []string{"PATH=" + binDir})
	assert.ErrorIs(t, err, exec.ErrNotFound)

	_, err = shell.LookPath("tool", nil)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}
