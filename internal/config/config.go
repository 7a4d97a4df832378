package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"quantum-dispatch/internal/anneal"
)

// Config is the service configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Solver   SolverConfig   `json:"solver"`
	Logging  LoggingConfig  `json:"logging"`
	Profiles ProfilesConfig `json:"profiles"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port int `json:"port"`
	// Mode is the gin mode: "debug" or "release".
	Mode string `json:"mode"`
	// AllowedOrigins is the CORS allowlist. "*" allows any origin.
	AllowedOrigins []string `json:"allowed_origins"`
}

// SolverConfig controls the QUBO sampler.
type SolverConfig struct {
	Reads   int     `json:"reads"`
	Sweeps  int     `json:"sweeps"`
	BetaMin float64 `json:"beta_min"`
	BetaMax float64 `json:"beta_max"`
	// ExactCutoff solves exhaustively at or below this variable count.
	ExactCutoff int `json:"exact_cutoff"`
	// Seed fixes the sampler and summary randomness. Zero = time-based.
	Seed int64 `json:"seed"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `json:"level"`
}

// ProfilesConfig points at the site profile directory.
type ProfilesConfig struct {
	Dir string `json:"dir"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Profiles.Dir == "" {
		c.Profiles.Dir = "examples/profiles"
	}
	// Solver defaults live in the anneal package; zero values are filled
	// when the config is converted.
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	if _, err := anneal.New(c.Solver.ToAnnealConfig()); err != nil {
		return fmt.Errorf("solver config invalid: %w", err)
	}
	return nil
}

// ToAnnealConfig converts the solver section to the sampler config.
func (s SolverConfig) ToAnnealConfig() anneal.Config {
	return anneal.Config{
		Reads:       s.Reads,
		Sweeps:      s.Sweeps,
		BetaMin:     s.BetaMin,
		BetaMax:     s.BetaMax,
		ExactCutoff: s.ExactCutoff,
		Seed:        s.Seed,
	}
}

// Default returns a configuration with defaults applied, for running
// without a config file.
func Default() *Config {
	var c Config
	c.SetDefaults()
	return &c
}

// Load reads a yaml or json config file and applies environment overrides
// with the QD_ prefix (e.g. QD_SERVER__PORT=8080).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads the given path, or returns defaults when path is
// empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func loadEnv(k *koanf.Koanf) error {
	if k == nil {
		return errors.New("nil koanf")
	}
	return k.Load(env.Provider("QD_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "qd_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
}
