package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Server  ServerConfig       `yaml:"server"`
	Log     LogConfig          `yaml:"log"`
	Search  SearchConfig       `yaml:"search"`
	Terrain map[string]float64 `yaml:"terrain"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SearchConfig holds engine defaults.
type SearchConfig struct {
	ClusterSize      int    `yaml:"cluster_size"`
	DefaultAlgorithm string `yaml:"default_algorithm"`
	// CacheEntries bounds the number of HPA abstract graphs kept; 0 disables caching.
	CacheEntries int `yaml:"cache_entries"`
}

// Default returns the built-in configuration.
func Default() *Config {
	terrain := make(map[string]float64)
	for k, w := range gridgraph.DefaultCostTable() {
		terrain[k.String()] = w
	}

	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{
			ClusterSize:      10,
			DefaultAlgorithm: "astar",
			CacheEntries:     16,
		},
		Terrain: terrain,
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: negative server timeout", ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes %d must be positive", ErrInvalidConfig, c.Server.MaxBodyBytes)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Search.ClusterSize <= 0 {
		return fmt.Errorf("%w: search.cluster_size %d must be positive", ErrInvalidConfig, c.Search.ClusterSize)
	}
	if c.Search.DefaultAlgorithm == "" {
		return fmt.Errorf("%w: search.default_algorithm is empty", ErrInvalidConfig)
	}
	if c.Search.CacheEntries < 0 {
		return fmt.Errorf("%w: search.cache_entries %d is negative", ErrInvalidConfig, c.Search.CacheEntries)
	}
	for name, w := range c.Terrain {
		if _, err := terrainWeight(name, w); err != nil {
			return err
		}
	}

	return nil
}

func terrainWeight(name string, w float64) (gridgraph.TerrainKind, error) {
	k, ok := gridgraph.ParseTerrain(name)
	if !ok || !k.Passable() {
		return 0, fmt.Errorf("%w: terrain %q is not a passable terrain kind", ErrInvalidConfig, name)
	}
	if !(w > 0) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: terrain %s weight %v must be positive and finite", ErrInvalidConfig, name, w)
	}

	return k, nil
}

// OverrideCosts returns a copy of base with the named weights replaced.
// Names follow the terrain section of the config file.
func OverrideCosts(base gridgraph.CostTable, overrides map[string]float64) (gridgraph.CostTable, error) {
	t := base.Clone()
	for name, w := range overrides {
		k, err := terrainWeight(name, w)
		if err != nil {
			return nil, err
		}
		t[k] = w
	}

	return t, nil
}

// CostTable converts the terrain section to a gridgraph.CostTable.
// Kinds absent from the section are missing from the table.
func (c *Config) CostTable() gridgraph.CostTable {
	t := make(gridgraph.CostTable, len(c.Terrain))
	for name, w := range c.Terrain {
		if k, ok := gridgraph.ParseTerrain(name); ok {
			t[k] = w
		}
	}

	return t
}

// Logger builds a slog.Logger writing to w with the configured handler and level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return lvl, nil
}
