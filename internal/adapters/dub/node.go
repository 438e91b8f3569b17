package dub

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/cc"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/adapters/shell"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

const (
	// ToolNodeID is the unique identifier for the build tool Graft node.
	ToolNodeID graft.ID = "adapter.dub.tool"
	// GeneratorNodeID is the unique identifier for the manifest generator Graft node.
	GeneratorNodeID graft.ID = "adapter.dub.generator"
)

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        ToolNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(runner, settings.Dub), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestGenerator]{
		ID:        GeneratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ToolNodeID, cc.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ManifestGenerator, error) {
			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.CCompiler](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(tool, compiler, settings.PpydVersion), nil
		},
	})
}
