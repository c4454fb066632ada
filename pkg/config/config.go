// Package config loads squarespiral settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/squarespiral/config.toml (falling back
// to ~/.config/squarespiral/config.toml). A missing file yields [Default].
// Environment variables override individual connection settings:
//
//   - SQUARESPIRAL_REDIS_ADDR: cache.redis_addr (and selects the redis backend)
//   - SQUARESPIRAL_MONGO_URI: server.mongo_uri (and selects the mongo store)
//
// # Example file
//
//	[render]
//	style = "handdrawn"
//	width = 1200
//	outline = true
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/pipeline"
)

const appName = "squarespiral"

// Environment variable names.
const (
	EnvRedisAddr = "SQUARESPIRAL_REDIS_ADDR"
	EnvMongoURI  = "SQUARESPIRAL_MONGO_URI"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Layout store backends for the server.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreMongo  = "mongo"
)

// Config is the full configuration file.
type Config struct {
	Render RenderConfig `toml:"render"`
	Pack   PackConfig   `toml:"pack"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds render defaults for the CLI and API.
type RenderConfig struct {
	Width    float64  `toml:"width"`
	Height   float64  `toml:"height"`
	Style    string   `toml:"style"`
	Margin   float64  `toml:"margin_ratio"`
	Outline  bool     `toml:"outline"`
	Centroid bool     `toml:"centroid"`
	Labels   bool     `toml:"labels"`
	Formats  []string `toml:"formats"`
}

// PackConfig holds packing defaults.
type PackConfig struct {
	Sort     bool    `toml:"sort"`
	MaxValue float64 `toml:"max_value"` // 0 means the largest value
}

// CacheConfig selects and configures the pipeline cache.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	TTL           time.Duration `toml:"ttl"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	Store      string `toml:"store"`
	StoreDir   string `toml:"store_dir"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:   pipeline.DefaultWidth,
			Height:  pipeline.DefaultHeight,
			Style:   pipeline.DefaultStyle,
			Margin:  pipeline.DefaultMargin,
			Formats: []string{pipeline.FormatSVG},
		},
		Cache: CacheConfig{
			Backend: CacheFile,
		},
		Server: ServerConfig{
			Addr:  ":8080",
			Store: StoreMemory,
		},
	}
}

// Dir returns the configuration directory using the XDG convention.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the location of config.toml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir returns the default file cache directory (~/.cache/squarespiral).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads path on top of [Default], applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %s in %s", undecoded[0], path)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		c.Cache.RedisAddr = addr
		c.Cache.Backend = CacheRedis
	}
	if uri := os.Getenv(EnvMongoURI); uri != "" {
		c.Server.MongoURI = uri
		c.Server.Store = StoreMongo
	}
}

// Validate checks every section and returns the first INVALID_CONFIG error.
func (c Config) Validate() error {
	if err := errors.ValidateDimensions(c.Render.Width, c.Render.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render")
	}
	if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.style")
	}
	if c.Render.Margin < 0 || c.Render.Margin >= 0.5 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.margin_ratio must be in [0, 0.5), got %v", c.Render.Margin)
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}
	if c.Pack.MaxValue != 0 {
		if err := errors.ValidateMagnitude("pack.max_value", c.Pack.MaxValue); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "pack")
		}
	}

	if !slices.Contains([]string{CacheFile, CacheRedis, CacheNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}

	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	switch c.Server.Store {
	case StoreMemory:
	case StoreFile:
		if c.Server.StoreDir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "server.store_dir is required for the file store")
		}
	case StoreMongo:
		if c.Server.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "server.mongo_uri is required for the mongo store")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "server.store must be memory, file or mongo, got %q", c.Server.Store)
	}
	return nil
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// PipelineOptions returns pipeline options seeded from the pack and render
// sections.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		MaxValue:   c.Pack.MaxValue,
		Sort:       c.Pack.Sort,
		Formats:    slices.Clone(c.Render.Formats),
		Style:      c.Render.Style,
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		Margin:     c.Render.Margin,
		Outline:    c.Render.Outline,
		Centroid:   c.Render.Centroid,
		ShowLabels: c.Render.Labels,
	}
}
