package siteconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/TomAugspurger/TomAugspurger.github.io/internal/log"
)

// Environment variables consulted by the loader. They let a publish run
// point the site at its public URL without editing the document.
const (
	EnvSiteURL      = "SITECONF_SITE_URL"
	EnvRelativeURLs = "SITECONF_RELATIVE_URLS"
	EnvContentPath  = "SITECONF_CONTENT_PATH"
)

// Loader reads a configuration document with precedence ENV > file > defaults.
type Loader struct {
	path   string
	useEnv bool
	logger zerolog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithoutEnv disables environment overrides.
func WithoutEnv() LoaderOption {
	return func(l *Loader) {
		l.useEnv = false
	}
}

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader for the document at path.
func NewLoader(path string, opts ...LoaderOption) *Loader {
	l := &Loader{
		path:   path,
		useEnv: true,
		logger: log.WithComponent("siteconf"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, decodes, overrides and validates the document.
func (l *Loader) Load() (SiteConfig, error) {
	path := filepath.Clean(l.path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return SiteConfig{}, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- the document path is chosen by the site owner
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := l.parse(data)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.Debug().
		Str("path", path).
		Str("site_url", cfg.SiteURL).
		Bool("relative_urls", cfg.RelativeURLs).
		Interface("feeds", cfg.EnabledFeeds()).
		Strs("markdown_extensions", cfg.Markdown.EnabledExtensions()).
		Msg("loaded site configuration")
	return cfg, nil
}

func (l *Loader) parse(data []byte) (SiteConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	if l.useEnv {
		if err := l.applyEnv(&cfg); err != nil {
			return SiteConfig{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// decode parses a single YAML document strictly: unknown keys are errors.
func decode(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return SiteConfig{}, errors.New("config document is empty")
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return SiteConfig{}, fmt.Errorf("%w: %w", ErrUnknownField, err)
		}
		return SiteConfig{}, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return SiteConfig{}, ErrMultipleDocuments
	}
	return cfg, nil
}

func (l *Loader) applyEnv(cfg *SiteConfig) error {
	if v := EnvOr(EnvSiteURL, ""); v != "" {
		l.logger.Debug().Str("key", EnvSiteURL).Str("value", v).Msg("using environment variable")
		cfg.SiteURL = v
	}
	if v := EnvOr(EnvContentPath, ""); v != "" {
		l.logger.Debug().Str("key", EnvContentPath).Str("value", v).Msg("using environment variable")
		cfg.ContentPath = v
	}
	if v := EnvOr(EnvRelativeURLs, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvRelativeURLs, err)
		}
		l.logger.Debug().Str("key", EnvRelativeURLs).Bool("value", b).Msg("using environment variable")
		cfg.RelativeURLs = b
	}
	return nil
}
