package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/logger"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the resolved settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

type pathKey struct{}

// WithPath returns a copy of ctx naming the settings file the settings node reads.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey{}, path)
}

// PathFromContext returns the settings file named by ctx, or the default location.
func PathFromContext(ctx context.Context) string {
	if path, ok := ctx.Value(pathKey{}).(string); ok && path != "" {
		return path
	}
	return domain.DefaultConfigPath()
}

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			return loader.Load(PathFromContext(ctx))
		},
	})
}
