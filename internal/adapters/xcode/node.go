package xcode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carth/internal/core/ports"
)

const (
	NodeID          graft.ID = "adapter.env_factory"
	InspectorNodeID graft.ID = "adapter.toolchain_inspector"
	SelectorNodeID  graft.ID = "adapter.toolchain_selector"
)

func init() {
	graft.Register(graft.Node[ports.ToolchainInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ToolchainInspector, error) {
			return NewInspector(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainSelector]{
		ID:        SelectorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ToolchainSelector, error) {
			return NewSelector(), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SelectorNodeID},
		Run: func(ctx context.Context) (ports.EnvironmentFactory, error) {
			selector, err := graft.Dep[ports.ToolchainSelector](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnvFactory(selector), nil
		},
	})
}
