package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/dcell/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dcell/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dcell/internal/adapters/magic"              //nolint:depguard // Wired in app layer
	"go.trai.ch/dcell/internal/adapters/python"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dcell/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/dcell/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			magic.NodeID,
			pipeline.NodeID,
			cas.NodeID,
			python.SessionNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			parser, err := graft.Dep[ports.CellParser](ctx)
			if err != nil {
				return nil, err
			}

			pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.BuildCache](ctx)
			if err != nil {
				return nil, err
			}

			session, err := graft.Dep[ports.Session](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(parser, pipe, cache, session, telemetry, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: settings,
	}, nil
}
