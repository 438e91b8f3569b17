package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/adapters/fs"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

// NodeID is the unique identifier for the build cache Graft node.
const NodeID graft.ID = "adapter.build_cache"

func init() {
	graft.Register(graft.Node[ports.BuildCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, fs.VerifierNodeID},
		Run: func(ctx context.Context) (ports.BuildCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.CacheDir, verifier), nil
		},
	})
}
