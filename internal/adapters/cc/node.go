package cc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/adapters/shell"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

// NodeID is the unique identifier for the C compiler Graft node.
const NodeID graft.ID = "adapter.cc"

func init() {
	graft.Register(graft.Node[ports.CCompiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CCompiler, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(runner, settings.CC), nil
		},
	})
}
