package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.MetadataNodeID,
			fs.ReaderNodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			meta, err := graft.Dep[ports.MetadataProvider](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.ResourceReader](ctx)
			if err != nil {
				return nil, err
			}

			return New(meta, reader), nil
		},
	})
}
