package magic

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
)

// NodeID is the unique identifier for the cell parser Graft node.
const NodeID graft.ID = "adapter.magic"

func init() {
	graft.Register(graft.Node[ports.CellParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CellParser, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(settings), nil
		},
	})
}
