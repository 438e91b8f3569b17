package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcell/internal/adapters/cas"
	"go.trai.ch/dcell/internal/adapters/cc"
	"go.trai.ch/dcell/internal/adapters/fs"
	"go.trai.ch/dcell/internal/adapters/shell"
	"go.trai.ch/dcell/internal/adapters/telemetry"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/dcell/internal/core/ports/mocks"
	"go.trai.ch/dcell/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

var identity = domain.InterpreterIdentity{
	Major:      3,
	Minor:      12,
	Micro:      1,
	Executable: "/usr/bin/python3",
	Library:    "/usr/lib/libpython3.12.so",
}

type fixture struct {
	store     *cas.Store
	probe     *mocks.MockInterpreterProbe
	generator *mocks.MockManifestGenerator
	tool      *mocks.MockBuildTool
	loader    *mocks.MockLoader
	out       *bytes.Buffer
	pipeline  *pipeline.Pipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:     cas.NewStore(t.TempDir(), fs.NewVerifier()),
		probe:     mocks.NewMockInterpreterProbe(ctrl),
		generator: mocks.NewMockManifestGenerator(ctrl),
		tool:      mocks.NewMockBuildTool(ctrl),
		loader:    mocks.NewMockLoader(ctrl),
		out:       &bytes.Buffer{},
	}
	f.probe.EXPECT().Probe(gomock.Any()).Return(identity, nil).AnyTimes()

	f.pipeline = pipeline.NewPipeline(
		f.probe, fs.NewHasher(), f.store, f.generator, f.tool, f.loader, telemetry.NewNoOp())
	f.pipeline.SetOutput(f.out)
	return f
}

func (f *fixture) writeArtifact(t *testing.T, name string) {
	t.Helper()
	path := f.store.ArtifactPath(name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("ELF"), domain.FilePerm))
}

// expectBuild makes the build tool produce the artifact and return output.
func (f *fixture) expectBuild(t *testing.T, output string) {
	t.Helper()
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Manifest{}, nil)
	f.tool.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dir string, _ domain.BuildConfig) ([]byte, error) {
			f.writeArtifact(t, filepath.Base(dir))
			return []byte(output), nil
		})
}

func (f *fixture) expectLoad(t *testing.T, attrs map[string]any) {
	t.Helper()
	mod := mocks.NewMockModule(gomock.NewController(t))
	mod.EXPECT().Attributes().Return(attrs, nil)
	f.loader.EXPECT().
		Load(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path, name string) (ports.Module, error) {
			assert.Equal(t, f.store.ArtifactPath(name), path)
			return mod, nil
		})
}

func cell(source string) domain.BuildConfig {
	return domain.NewBuildConfig(domain.BuildConfig{Source: source})
}

func TestPipeline_CacheMissBuildsAndLoads(t *testing.T) {
	f := newFixture(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.pipeline.SetClock(func() time.Time { return at })

	cfg := cell("int twice(int x) { return 2 * x; }")

	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ManifestRequest) (domain.Manifest, error) {
			assert.Equal(t, f.store.Dir(req.ModuleName), req.BuildDir)
			assert.DirExists(t, req.BuildDir)
			assert.Equal(t, cfg, req.Config)
			assert.Equal(t, identity, req.Interpreter)
			return domain.Manifest{}, nil
		})
	f.tool.EXPECT().
		Build(gomock.Any(), gomock.Any(), cfg).
		DoAndReturn(func(_ context.Context, dir string, _ domain.BuildConfig) ([]byte, error) {
			f.writeArtifact(t, filepath.Base(dir))
			return []byte("Compiling..."), nil
		})
	f.expectLoad(t, map[string]any{"twice": "fn", "__doc__": "doc", "__name__": "mod"})

	res, err := f.pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeBuilt, res.Outcome)
	assert.Equal(t, res.Fingerprint.ModuleName(), res.ModuleName)
	assert.Equal(t, map[string]any{"twice": "fn"}, res.Symbols)
	assert.Equal(t, "Compiling...", string(res.Output))
	assert.Empty(t, f.out.String(), "output is only echoed on request")

	entry, ok := f.store.Lookup(res.Fingerprint)
	require.True(t, ok)
	assert.Equal(t, domain.CacheEntry{
		Fingerprint: res.Fingerprint,
		ModuleName:  res.ModuleName,
		BuildDir:    res.BuildDir,
		Timestamp:   at,
	}, entry)
}

func TestPipeline_CacheHitSkipsBuild(t *testing.T) {
	f := newFixture(t)
	cfg := cell("void f() {}")

	plan, err := f.pipeline.Plan(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, plan.Cached)
	f.writeArtifact(t, plan.ModuleName)

	f.expectLoad(t, map[string]any{"f": 1})

	res, err := f.pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCached, res.Outcome)
	assert.True(t, res.Cached)
	assert.Equal(t, plan.ModuleName, res.ModuleName)
	assert.Nil(t, res.Output)
	assert.Empty(t, f.store.Entries())
}

func TestPipeline_ForceBypassesCache(t *testing.T) {
	f := newFixture(t)
	cfg := domain.NewBuildConfig(domain.BuildConfig{Source: "void f() {}", ModuleName: "mymod", Force: true})
	f.writeArtifact(t, "mymod")

	f.expectBuild(t, "rebuilt")
	f.expectLoad(t, map[string]any{"f": 1})

	res, err := f.pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, domain.OutcomeBuilt, res.Outcome)
	assert.Equal(t, "mymod", res.ModuleName)
}

func TestPipeline_ForceChangesSyntheticName(t *testing.T) {
	f := newFixture(t)
	cfg := domain.NewBuildConfig(domain.BuildConfig{Source: "void f() {}", Force: true})

	first, err := f.pipeline.Plan(context.Background(), cfg)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := f.pipeline.Plan(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first.ModuleName, second.ModuleName)
}

func TestPipeline_PrintOutput(t *testing.T) {
	f := newFixture(t)
	cfg := domain.NewBuildConfig(domain.BuildConfig{Source: "void f() {}", PrintOutput: true})

	f.expectBuild(t, "Linking...\n")
	f.expectLoad(t, map[string]any{})

	_, err := f.pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "Linking...\n", f.out.String())
}

func TestPipeline_BuildFailureLoadsNothing(t *testing.T) {
	f := newFixture(t)
	cause := errors.Join(domain.ErrBuildFailed, errors.New("exit status 1"))

	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Manifest{}, nil)
	f.tool.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("source.d(1): Error: undefined identifier\n"), cause)
	// No loader expectation: a call would fail the test.

	res, err := f.pipeline.Run(context.Background(), cell("void f() { nope(); }"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	require.NotNil(t, res)
	assert.Nil(t, res.Symbols)
	assert.Equal(t, "source.d(1): Error: undefined identifier\n", f.out.String())
	assert.Empty(t, f.store.Entries())
}

func TestPipeline_BuildWithoutArtifact(t *testing.T) {
	f := newFixture(t)

	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Manifest{}, nil)
	f.tool.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("ok"), nil)

	_, err := f.pipeline.Run(context.Background(), cell("void f() {}"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestPipeline_GenerateFailure(t *testing.T) {
	f := newFixture(t)

	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(domain.ErrCCompileFailed, errors.New("cc: not found")))

	_, err := f.pipeline.Run(context.Background(), cell("void f() {}"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCCompileFailed)
}

func TestPipeline_ShimCompileFailureEchoesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the C compiler")
	}
	f := newFixture(t)

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	script := filepath.Join(t.TempDir(), "fakecc")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'so_ctor.c:3: error: unknown type' >&2\nexit 1\n"), 0o755))
	compiler := cc.NewCompiler(shell.NewRunner(log), script)

	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.ManifestRequest) (domain.Manifest, error) {
			return nil, compiler.CompileObject(ctx, "so_ctor.c", filepath.Join(req.BuildDir, domain.ShimObjectName))
		})
	// No build tool or loader expectation: a call would fail the test.

	_, err := f.pipeline.Run(context.Background(), cell("void f() {}"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCCompileFailed)
	assert.Contains(t, f.out.String(), "so_ctor.c:3: error: unknown type")
}

func TestPipeline_LoadFailure(t *testing.T) {
	f := newFixture(t)

	f.expectBuild(t, "")
	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrLoadFailed)

	res, err := f.pipeline.Run(context.Background(), cell("void f() {}"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
	assert.Nil(t, res.Symbols)
}

func TestPipeline_InvalidModuleName(t *testing.T) {
	f := newFixture(t)
	cfg := domain.NewBuildConfig(domain.BuildConfig{Source: "void f() {}", ModuleName: "not-valid"})

	_, err := f.pipeline.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidModuleName)
}

func TestPipeline_ProbeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockInterpreterProbe(ctrl)
	probe.EXPECT().Probe(gomock.Any()).Return(domain.InterpreterIdentity{}, domain.ErrInterpreterProbeFailed)

	p := pipeline.NewPipeline(probe, fs.NewHasher(), cas.NewStore(t.TempDir(), fs.NewVerifier()),
		nil, nil, nil, telemetry.NewNoOp())

	_, err := p.Run(context.Background(), cell("void f() {}"))
	require.ErrorIs(t, err, domain.ErrInterpreterProbeFailed)
}

func TestPipeline_PlanIsDeterministic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.pipeline.Plan(ctx, cell("void f() {}\n\n\n"))
	require.NoError(t, err)
	b, err := f.pipeline.Plan(ctx, cell("void f() {}"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := f.pipeline.Plan(ctx, domain.NewBuildConfig(domain.BuildConfig{Source: "void f() {}", FlagLine: "-c -O"}))
	require.NoError(t, err)
	assert.NotEqual(t, a.ModuleName, c.ModuleName)

	assert.NoDirExists(t, a.BuildDir, "planning never touches the disk")
}

func TestPipeline_RecordsFirstBuildOnly(t *testing.T) {
	f := newFixture(t)
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.pipeline.SetClock(func() time.Time { return first })
	cfg := domain.NewBuildConfig(domain.BuildConfig{Source: "void f() {}", ModuleName: "named"})

	f.expectBuild(t, "")
	f.expectLoad(t, map[string]any{})
	res, err := f.pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, res.Recorded)

	// The artifact disappears, so the same fingerprint is built again.
	require.NoError(t, os.Remove(res.ArtifactPath))
	f.pipeline.SetClock(func() time.Time { return first.Add(time.Hour) })
	f.expectBuild(t, "")
	f.expectLoad(t, map[string]any{})
	again, err := f.pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, again.Recorded)
	assert.Equal(t, domain.OutcomeBuilt, again.Outcome)

	entry, ok := f.store.Lookup(res.Fingerprint)
	require.True(t, ok)
	assert.Equal(t, first, entry.Timestamp)
	assert.Len(t, f.store.Entries(), 1)
}
