package app

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/httpd"              //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/cache"
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
			config.SettingsNodeID,
			cache.NodeID,
			httpd.NodeID,
			fs.WalkerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			c, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			handler, err := graft.Dep[http.Handler](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[ports.Walker](ctx)
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

			return New(cfg, c, handler, walker, telemetry, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}
