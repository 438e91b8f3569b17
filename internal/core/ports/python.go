package ports

import (
	"context"

	"go.trai.ch/dcell/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=python.go -destination=mocks/mock_python.go -package=mocks

// InterpreterProbe reports the identity of the interpreter that hosts extension modules.
type InterpreterProbe interface {
	Probe(ctx context.Context) (domain.InterpreterIdentity, error)
}

// Loader imports a compiled extension module into the host interpreter.
type Loader interface {
	// Load imports the shared library at path as the module name.
	Load(ctx context.Context, path, name string) (Module, error)
}

// Module is a loaded extension module.
type Module interface {
	// Name returns the module name it was imported as.
	Name() string
	// Attributes returns the module's top-level attributes keyed by name.
	Attributes() (map[string]any, error)
}

// Session is the interactive namespace symbols are merged into.
type Session interface {
	// Push binds every symbol into the namespace, replacing existing bindings.
	Push(symbols map[string]any) error
}
