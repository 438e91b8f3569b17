package ports

import (
	"context"

	"go.trai.ch/dcell/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks

// BuildTool drives the D package manager.
type BuildTool interface {
	// Describe resolves the project rooted at dir and returns the on-disk path of the named package.
	Describe(ctx context.Context, dir, pkg string) (string, error)
	// Build compiles the project rooted at dir and returns the tool's combined output.
	// On failure the output is returned together with an error.
	Build(ctx context.Context, dir string, cfg domain.BuildConfig) ([]byte, error)
}

// CCompiler compiles C sources into object files.
type CCompiler interface {
	// CompileObject compiles src into the position independent object file out.
	CompileObject(ctx context.Context, src, out string) error
}

// ManifestGenerator populates a build directory with the generated sources and the manifest.
type ManifestGenerator interface {
	// Generate writes every file the build tool needs and returns the manifest it wrote.
	Generate(ctx context.Context, req domain.ManifestRequest) (domain.Manifest, error)
}
