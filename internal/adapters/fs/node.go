package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
)

const (
	// MetadataNodeID is the unique identifier for the metadata Graft node.
	MetadataNodeID graft.ID = "adapter.fs_metadata"
	// ReaderNodeID is the unique identifier for the reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs_reader"
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs_walker"
)

func init() {
	graft.Register(graft.Node[ports.MetadataProvider]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.MetadataProvider, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetadata(cfg.Root), nil
		},
	})

	graft.Register(graft.Node[ports.ResourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ResourceReader, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(cfg.Root), nil
		},
	})

	graft.Register(graft.Node[ports.Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Walker, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(cfg.Root), nil
		},
	})
}
