package httpd

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stamp/internal/adapters/fs"     //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stamp/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/cache"
)

// NodeID is the unique identifier for the HTTP handler Graft node.
const NodeID graft.ID = "adapter.httpd"

func init() {
	graft.Register(graft.Node[http.Handler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.MetadataNodeID,
			fs.ReaderNodeID,
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (http.Handler, error) {
			c, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			meta, err := graft.Dep[ports.MetadataProvider](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.ResourceReader](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return CacheControl(cfg, NewHandler(c, meta, reader, cfg, log)), nil
		},
	})
}
