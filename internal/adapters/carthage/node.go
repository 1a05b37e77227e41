package carthage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carth/internal/adapters/logger"
	"go.trai.ch/carth/internal/core/ports"
)

const NodeID graft.ID = "adapter.tool_locator"

func init() {
	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})
}
