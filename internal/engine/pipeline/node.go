package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dcell/internal/adapters/dub"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dcell/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dcell/internal/adapters/python"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dcell/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dcell/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			python.ProbeNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			dub.GeneratorNodeID,
			dub.ToolNodeID,
			python.LoaderNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			probe, err := graft.Dep[ports.InterpreterProbe](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.BuildCache](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[ports.ManifestGenerator](ctx)
			if err != nil {
				return nil, err
			}

			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.Loader](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewPipeline(probe, hasher, cache, generator, tool, loader, telemetry), nil
		},
	})
}
