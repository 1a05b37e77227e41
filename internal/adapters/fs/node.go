package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carth/internal/core/ports"
)

const NodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
