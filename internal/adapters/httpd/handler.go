// Package httpd implements the HTTP serving adapter.
package httpd

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/cache"
)

// Handler serves resources from the document root. Rewritable documents go
// through the artifact cache; everything else streams from the reader.
type Handler struct {
	cache  *cache.Cache
	meta   ports.MetadataProvider
	reader ports.ResourceReader
	cfg    *domain.Config
	log    ports.Logger
}

// NewHandler creates a new Handler.
func NewHandler(c *cache.Cache, meta ports.MetadataProvider, reader ports.ResourceReader, cfg *domain.Config, log ports.Logger) *Handler {
	return &Handler{
		cache:  c,
		meta:   meta,
		reader: reader,
		cfg:    cfg,
		log:    log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p := path.Clean("/" + r.URL.Path)
	if cache.IsRewritable(p) {
		mode := domain.ParseRewriteMode(r.Header.Get(domain.RewriteHeader))
		h.serveDocument(w, r, p, mode)
		return
	}
	h.serveStatic(w, r, p)
}

func (h *Handler) serveDocument(w http.ResponseWriter, r *http.Request, p string, mode domain.RewriteMode) {
	key := domain.Key{Mode: mode, Path: p}
	body, err := h.cache.RewrittenBytes(key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, domain.ErrMalformedReference):
		h.log.Error(err)
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.log.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", h.cfg.DocumentCacheControl)
	}
	newest := h.cache.NewestModified(key)
	if newest != 0 {
		w.Header().Set("Last-Modified", time.UnixMilli(newest).UTC().Format(http.TimeFormat))
	}

	etag := fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64(body)))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if since := r.Header.Get("If-Modified-Since"); since != "" && newest != 0 && r.Header.Get("If-None-Match") == "" {
		// Last-Modified granularity is one second.
		if t, err := http.ParseTime(since); err == nil && !time.UnixMilli(newest).Truncate(time.Second).After(t) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request, p string) {
	rc, err := h.reader.Open(p)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.log.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	var modTime time.Time
	if ms := h.meta.LastModified(p); ms != 0 {
		modTime = time.UnixMilli(ms)
	}

	// os-backed readers support seeking, which enables range requests and
	// conditional responses.
	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(w, r, path.Base(p), modTime, rs)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if !modTime.IsZero() {
		w.Header().Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	}
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.Copy(w, rc)
}
