// Package config loads the mstrace configuration from an optional file,
// MSTRACE_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstrace/internal/logging"
	"github.com/katalvlaran/mstrace/kruskal"
)

// EnvPrefix prefixes every environment override, e.g. MSTRACE_TRACE_DETAILED.
const EnvPrefix = "MSTRACE"

// Config is the top-level configuration.
type Config struct {
	Log    logging.Config `mapstructure:"log"    yaml:"log"`
	Trace  TraceConfig    `mapstructure:"trace"  yaml:"trace"`
	Server ServerConfig   `mapstructure:"server" yaml:"server"`
	Cache  CacheConfig    `mapstructure:"cache"  yaml:"cache"`
}

// TraceConfig holds the defaults applied to every trace.
type TraceConfig struct {
	Engine  string          `mapstructure:"engine"  yaml:"engine"  validate:"oneof=dsu dfs"`
	Options kruskal.Options `mapstructure:",squash" yaml:",inline"`
}

// ServerConfig configures the HTTP service. MaxNodes and MaxEdges bound the
// graph a request may describe; MaxTraceCells bounds the worst-case trace
// size (step bound times per-step state) before any tracing starts.
type ServerConfig struct {
	Addr          string        `mapstructure:"addr"            yaml:"addr"            validate:"required"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"    yaml:"read_timeout"    validate:"gte=0"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"   yaml:"write_timeout"   validate:"gte=0"`
	MaxBodyBytes  int64         `mapstructure:"max_body_bytes"  yaml:"max_body_bytes"  validate:"gt=0"`
	MaxNodes      int           `mapstructure:"max_nodes"       yaml:"max_nodes"       validate:"gt=0"`
	MaxEdges      int           `mapstructure:"max_edges"       yaml:"max_edges"       validate:"gt=0"`
	MaxTraceCells int           `mapstructure:"max_trace_cells" yaml:"max_trace_cells" validate:"gt=0"`
}

// CacheConfig configures the trace memo of the HTTP service.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"     yaml:"ttl"     validate:"required_if=Enabled true"`
	MaxMB   int           `mapstructure:"max_mb"  yaml:"max_mb"  validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: logging.Config{
			Level:      "info",
			Format:     "text",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Trace: TraceConfig{
			Engine:  string(kruskal.EngineDSU),
			Options: kruskal.DefaultOptions(),
		},
		Server: ServerConfig{
			Addr:          ":8080",
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  30 * time.Second,
			MaxBodyBytes:  1 << 20,
			MaxNodes:      2000,
			MaxEdges:      5000,
			MaxTraceCells: 5_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
			MaxMB:   64,
		},
	}
}

// Load reads path (may be empty), applies MSTRACE_* overrides over the
// defaults and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs the struct tags and the trace option rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	if err := c.Trace.Options.Validate(); err != nil {
		return fmt.Errorf("config: trace: %w", err)
	}

	return nil
}

// TraceOptions returns the configured engine and options.
func (c *Config) TraceOptions() (kruskal.Engine, kruskal.Options, error) {
	engine, err := kruskal.ParseEngine(c.Trace.Engine)
	if err != nil {
		return "", kruskal.Options{}, errors.Join(errors.New("config: trace.engine"), err)
	}

	return engine, c.Trace.Options, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("trace.engine", d.Trace.Engine)
	v.SetDefault("trace.detailed", d.Trace.Options.Detailed)
	v.SetDefault("trace.compression", d.Trace.Options.Compression)
	v.SetDefault("trace.max_find_hops", d.Trace.Options.MaxFindHops)
	v.SetDefault("trace.max_dfs_steps", d.Trace.Options.MaxDFSSteps)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("server.max_nodes", d.Server.MaxNodes)
	v.SetDefault("server.max_edges", d.Server.MaxEdges)
	v.SetDefault("server.max_trace_cells", d.Server.MaxTraceCells)

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.max_mb", d.Cache.MaxMB)
}
