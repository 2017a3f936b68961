// Package config provides the configuration loader for stamp.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the working directory.
const Filename = "stamp.yaml"

const (
	defaultRoot   = "public"
	defaultListen = ":8080"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the configuration from the given working directory. A missing
// file yields the defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, Filename)

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Warn("no " + Filename + " found, using defaults")
			return defaults(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := defaults()
	if file.Root != "" {
		cfg.Root = file.Root
	}
	if file.Listen != "" {
		cfg.Listen = file.Listen
	}
	if file.CacheControl.Document != "" {
		cfg.DocumentCacheControl = file.CacheControl.Document
	}
	if file.CacheControl.Stamped != "" {
		cfg.StampedCacheControl = file.CacheControl.Stamped
	}
	return cfg, nil
}

func defaults() *domain.Config {
	return &domain.Config{
		Root:                 defaultRoot,
		Listen:               defaultListen,
		DocumentCacheControl: domain.DefaultDocumentCacheControl,
		StampedCacheControl:  domain.DefaultStampedCacheControl,
	}
}
