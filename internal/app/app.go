// Package app implements the application layer for stamp.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/cache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App represents the main application logic.
type App struct {
	cfg       *domain.Config
	cache     *cache.Cache
	handler   http.Handler
	walker    ports.Walker
	telemetry ports.Telemetry
	log       ports.Logger
}

// New creates a new App instance.
func New(cfg *domain.Config, c *cache.Cache, handler http.Handler, walker ports.Walker, telemetry ports.Telemetry, log ports.Logger) *App {
	return &App{
		cfg:       cfg,
		cache:     c,
		handler:   handler,
		walker:    walker,
		telemetry: telemetry,
		log:       log,
	}
}

// Serve runs the HTTP server until the context is canceled.
func (a *App) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.log.Info("listening on " + a.cfg.Listen)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "server failed")
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "shutdown failed")
		}
		return nil
	})

	return group.Wait()
}

// Rewrite returns the rewritten bytes for a single document.
func (a *App) Rewrite(ctx context.Context, docPath string, mode domain.RewriteMode) ([]byte, error) {
	if !cache.IsRewritable(docPath) {
		return nil, zerr.With(domain.ErrNotRewritable, "path", docPath)
	}
	return a.cache.RewrittenBytes(domain.Key{Mode: mode, Path: docPath})
}

// Warm populates the cache for every rewritable document under the root.
func (a *App) Warm(ctx context.Context) error {
	defer a.telemetry.Close() //nolint:errcheck // Best effort close in defer

	paths, err := a.walker.List("css")
	if err != nil {
		return zerr.Wrap(err, "failed to list documents")
	}

	var errs error
	for _, p := range paths {
		_, vtx := a.telemetry.Record(ctx, p)

		artifact, hit, err := a.cache.Get(domain.Key{Mode: domain.ModeDefault, Path: p})
		if err != nil {
			vtx.Complete(err)
			errs = errors.Join(errs, zerr.With(err, "path", p))
			continue
		}
		if hit {
			vtx.Cached()
		}
		fmt.Fprintf(vtx.Stdout(), "%d dependencies\n", len(artifact.Dependencies))
		vtx.Complete(nil)
	}
	return errs
}
