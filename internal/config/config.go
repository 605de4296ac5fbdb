// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config is the root configuration for the Plenum server.
// Loaded via koanf with layered sources: defaults -> YAML file -> env.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatasetConfig locates the five input CSV tables and tunes the
// DuckDB instance used to load them. The tables are read once at
// startup; the engine never touches the files afterwards.
type DatasetConfig struct {
	Dir            string `koanf:"dir"`
	ScoresFile     string `koanf:"scores_file"`
	SimilarityFile string `koanf:"similarity_file"`
	TopicsFile     string `koanf:"topics_file"`
	RegionsFile    string `koanf:"regions_file"`
	FlagsFile      string `koanf:"flags_file"`

	// MaxMemory and Threads are passed to DuckDB for the load phase.
	// Threads 0 means runtime.NumCPU().
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// Path resolves a table filename against the dataset directory.
func (c DatasetConfig) Path(name string) string {
	return filepath.Join(c.Dir, name)
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	// TopK is how many allies/enemies and topic extremes a report
	// carries per list.
	TopK int `koanf:"top_k"`
}

// SecurityConfig holds CORS and rate-limit settings. Plenum serves
// read-only public data, so there is no authentication layer.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would prevent the
// server from working. Called once after loading, before anything is
// wired up.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Dataset.Dir == "" {
		return fmt.Errorf("dataset.dir is required")
	}
	for name, file := range map[string]string{
		"dataset.scores_file":     c.Dataset.ScoresFile,
		"dataset.similarity_file": c.Dataset.SimilarityFile,
		"dataset.topics_file":     c.Dataset.TopicsFile,
		"dataset.regions_file":    c.Dataset.RegionsFile,
		"dataset.flags_file":      c.Dataset.FlagsFile,
	} {
		if file == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	if c.API.TopK < 1 || c.API.TopK > 50 {
		return fmt.Errorf("api.top_k must be 1-50, got %d", c.API.TopK)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
