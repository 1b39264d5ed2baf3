// Package config loads the editor service configuration.
//
// Sources, lowest to highest priority:
//  1. Defaults (Default).
//  2. A YAML file, when a path is given.
//  3. DIGRAPH_* environment variables.
//
// The result is validated with struct tags before it is returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
	"github.com/katalvlaran/digraph/validation"
)

// Environment variables read by Load.
const (
	EnvAddr           = "DIGRAPH_ADDR"
	EnvAllowedOrigins = "DIGRAPH_ALLOWED_ORIGINS"
	EnvLogLevel       = "DIGRAPH_LOG_LEVEL"
	EnvLogFormat      = "DIGRAPH_LOG_FORMAT"
	EnvSnapshot       = "DIGRAPH_SNAPSHOT"
	EnvSampleSize     = "DIGRAPH_SAMPLE_SIZE"
	EnvSampleIDScheme = "DIGRAPH_SAMPLE_ID_SCHEME"
	EnvIDScheme       = "DIGRAPH_ID_SCHEME"
)

// Store id schemes.
const (
	IDSchemeCounter = "counter"
	IDSchemeUUID    = "uuid"
)

// ErrInvalidEnv indicates an environment variable that cannot be parsed.
var ErrInvalidEnv = errors.New("config: invalid environment variable")

// Config is the complete service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Graph  GraphConfig  `yaml:"graph"`
	Editor EditorConfig `yaml:"editor"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins" validate:"dive,required"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format      string `yaml:"format" validate:"omitempty,oneof=json console"`
	Development bool   `yaml:"development"`
}

// GraphConfig selects the initial snapshot: a file, else a generated graph of
// SampleSize nodes, else the bundled sample.
type GraphConfig struct {
	Snapshot       string `yaml:"snapshot"`
	SampleSize     int    `yaml:"sample_size" validate:"gte=0"`
	SampleIDScheme string `yaml:"sample_id_scheme" validate:"omitempty,oneof=ordinal decimal excel hex"`
	Seed           int64  `yaml:"seed"`
}

// EditorConfig maps onto editor.Option values.
type EditorConfig struct {
	IDScheme           string  `yaml:"id_scheme" validate:"oneof=counter uuid"`
	IDPrefix           string  `yaml:"id_prefix"`
	SpecialProbability float64 `yaml:"special_probability" validate:"gte=0,lte=1"`
	PasteOffset        float64 `yaml:"paste_offset"`
	ParallelEdges      bool    `yaml:"parallel_edges"`
	SelectPasted       bool    `yaml:"select_pasted"`
	StickySelection    bool    `yaml:"sticky_selection"`
	Seed               int64   `yaml:"seed"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
		},
		Log: LogConfig{Level: "info", Format: "json"},
		Editor: EditorConfig{
			IDScheme:           IDSchemeCounter,
			IDPrefix:           "n",
			SpecialProbability: editor.DefaultSpecialProbability,
			PasteOffset:        editor.DefaultPasteOffset,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok && v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvSnapshot); ok {
		cfg.Graph.Snapshot = v
	}
	if v, ok := lookup(EnvSampleSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidEnv, EnvSampleSize, v, err)
		}
		cfg.Graph.SampleSize = n
	}
	if v, ok := lookup(EnvSampleIDScheme); ok && v != "" {
		cfg.Graph.SampleIDScheme = strings.ToLower(v)
	}
	if v, ok := lookup(EnvIDScheme); ok && v != "" {
		cfg.Editor.IDScheme = strings.ToLower(v)
	}

	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// StoreOptions maps the editor section onto editor options. logger and obs may be nil.
func (c Config) StoreOptions(logger *zap.Logger, obs editor.Observer) []editor.Option {
	e := c.Editor
	opts := []editor.Option{
		editor.WithLogger(logger),
		editor.WithObserver(obs),
		editor.WithPasteOffset(e.PasteOffset, e.PasteOffset),
	}

	switch e.IDScheme {
	case IDSchemeUUID:
		opts = append(opts, editor.WithIDGenerator(editor.UUIDGenerator{}))
	default:
		opts = append(opts, editor.WithIDGenerator(editor.NewCounterIDGenerator(e.IDPrefix)))
	}

	seed := e.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	opts = append(opts, editor.WithNodeTypePolicy(
		editor.RandomNodeType(rng, e.SpecialProbability, core.SpecialType, core.EmptyType)))

	if e.ParallelEdges {
		opts = append(opts, editor.WithParallelEdges())
	}
	if e.SelectPasted {
		opts = append(opts, editor.WithSelectPasted())
	}
	if e.StickySelection {
		opts = append(opts, editor.WithStickySelection())
	}

	return opts
}

// BuilderOptions maps the graph section onto options for builder.Generate.
// A zero seed draws one from the clock.
func (c Config) BuilderOptions() []builder.BuilderOption {
	seed := c.Graph.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	if fn, ok := builder.IDScheme(c.Graph.SampleIDScheme); ok {
		opts = append(opts, builder.WithIDScheme(fn))
	}

	return opts
}
