package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/adapters/shell"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

const (
	// ProbeNodeID is the unique identifier for the interpreter probe Graft node.
	ProbeNodeID graft.ID = "adapter.python.probe"
	// RuntimeNodeID is the unique identifier for the embedded interpreter Graft node.
	RuntimeNodeID graft.ID = "adapter.python.runtime"
	// LoaderNodeID is the unique identifier for the module loader Graft node.
	LoaderNodeID graft.ID = "adapter.python.loader"
	// SessionNodeID is the unique identifier for the session Graft node.
	SessionNodeID graft.ID = "adapter.python.session"
)

func init() {
	graft.Register(graft.Node[ports.InterpreterProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.InterpreterProbe, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(runner, settings.Python), nil
		},
	})

	graft.Register(graft.Node[*Runtime]{
		ID:        RuntimeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProbeNodeID},
		Run: func(ctx context.Context) (*Runtime, error) {
			probe, err := graft.Dep[ports.InterpreterProbe](ctx)
			if err != nil {
				return nil, err
			}
			id, err := probe.Probe(ctx)
			if err != nil {
				return nil, err
			}
			return NewRuntime(id.Library), nil
		},
	})

	graft.Register(graft.Node[ports.Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RuntimeNodeID},
		Run: func(ctx context.Context) (ports.Loader, error) {
			rt, err := graft.Dep[*Runtime](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(rt), nil
		},
	})

	graft.Register(graft.Node[ports.Session]{
		ID:        SessionNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RuntimeNodeID},
		Run: func(ctx context.Context) (ports.Session, error) {
			rt, err := graft.Dep[*Runtime](ctx)
			if err != nil {
				return nil, err
			}
			return NewSession(rt), nil
		},
	})
}
