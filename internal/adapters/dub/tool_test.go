package dub_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcell/internal/adapters/dub"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const describeOutput = `Fetching pyd 0.14.4 (getting selected version)...
{
	"rootPackage": "_pyd_magic_abc",
	"packages": [
		{"name": "_pyd_magic_abc", "path": "/cache/_pyd_magic_abc/"},
		{"name": "pyd", "path": "/home/u/.dub/packages/pyd/0.14.4/pyd/"},
		{"name": "ppyd", "path": "/home/u/.dub/packages/ppyd/0.1.3/ppyd/"}
	]
}
`

func TestBuildArgs(t *testing.T) {
	cfg := domain.BuildConfig{Compiler: "ldc2", DubArgs: []string{"--build=release", "-v"}}
	assert.Equal(t,
		[]string{"build", "--root=/cache/m", "--compiler=ldc2", "--build=release", "-v"},
		dub.BuildArgs("/cache/m", cfg),
	)

	cfg.Force = true
	assert.Equal(t,
		[]string{"build", "--root=/cache/m", "--compiler=ldc2", "--force", "--build=release", "-v"},
		dub.BuildArgs("/cache/m", cfg),
	)
}

func TestTool_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	tool := dub.NewTool(runner, "/opt/dlang/dub")

	runner.EXPECT().
		Run(gomock.Any(), domain.Command{
			Name: "/opt/dlang/dub",
			Args: []string{"build", "--root=/cache/m", "--compiler=dmd"},
			Dir:  "/cache/m",
		}).
		Return([]byte("Linking...\n"), nil).
		Times(1)

	out, err := tool.Build(context.Background(), "/cache/m", domain.BuildConfig{Compiler: "dmd"})
	require.NoError(t, err)
	assert.Equal(t, "Linking...\n", string(out))
}

func TestTool_BuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	tool := dub.NewTool(runner, "")

	cause := &exec.ExitError{}
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("m.d(9): Error"), cause).Times(1)

	out, err := tool.Build(context.Background(), "/cache/m", domain.BuildConfig{Compiler: "dmd"})
	require.Error(t, err)
	assert.Equal(t, "m.d(9): Error", string(out))
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestTool_Describe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	tool := dub.NewTool(runner, "dub")

	runner.EXPECT().
		Run(gomock.Any(), domain.Command{Name: "dub", Args: []string{"describe", "--root=/cache/m"}, Dir: "/cache/m"}).
		Return([]byte(describeOutput), nil).
		Times(1)

	path, err := tool.Describe(context.Background(), "/cache/m", "pyd")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.dub/packages/pyd/0.14.4/pyd/", path)
}

func TestTool_DescribeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	tool := dub.NewTool(runner, "dub")

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("exit status 2")).Times(1)

	_, err := tool.Describe(context.Background(), "/cache/m", "pyd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDescribeFailed))
}

func TestPackagePath(t *testing.T) {
	path, err := dub.PackagePath([]byte(describeOutput), "ppyd")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.dub/packages/ppyd/0.1.3/ppyd/", path)

	_, err = dub.PackagePath([]byte(describeOutput), "mir")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBindingNotFound))

	_, err = dub.PackagePath([]byte("no json here\n"), "pyd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDescribeFailed))

	_, err = dub.PackagePath([]byte("{ broken"), "pyd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDescribeFailed))
}
