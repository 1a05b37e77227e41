package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carth/internal/core/ports"
)

const NodeID graft.ID = "adapter.run_info_store"

func init() {
	graft.Register(graft.Node[ports.RunInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RunInfoStore, error) {
			return NewStore(), nil
		},
	})
}
