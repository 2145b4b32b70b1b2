package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Pluto  PlutoConfig  `yaml:"pluto"`
	Cache  CacheConfig  `yaml:"cache"`

	// Optional: load valuation rates from a separate YAML (e.g. examples/rates/*.yaml).
	// If both ValuationFile and Valuation are provided, Valuation overrides ValuationFile.
	ValuationFile string          `yaml:"valuation_file"`
	Valuation     ValuationConfig `yaml:"valuation"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type PlutoConfig struct {
	AppToken string `yaml:"app_token"`
	BaseURL  string `yaml:"base_url"`
}

type CacheConfig struct {
	Enabled     bool   `yaml:"enabled"`
	AnalysisTTL string `yaml:"analysis_ttl"` // Go duration string, e.g. "1h"
}

// RateConfig overrides $/SF benchmarks for one borough. Zero fields
// keep the built-in rate.
type RateConfig struct {
	Residential  float64 `yaml:"residential"`
	Commercial   float64 `yaml:"commercial"`
	CommunityFac float64 `yaml:"community_facility"`
	Parking      float64 `yaml:"parking"`
}

type ValuationConfig struct {
	Boroughs map[int]RateConfig `yaml:"boroughs"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Enabled: true, AnalysisTTL: "1h"},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Fill defaults so partial files stay concise.
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Cache.AnalysisTTL == "" {
		c.Cache.AnalysisTTL = "1h"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If valuation_file is set, load it and merge in any explicit overrides from c.Valuation.
	if c.ValuationFile != "" {
		ratesPath := c.ValuationFile
		if !filepath.IsAbs(ratesPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), ratesPath)
			if _, err := os.Stat(cand); err == nil {
				ratesPath = cand
			}
		}
		loaded, err := loadValuationFile(ratesPath)
		if err != nil {
			return nil, err
		}
		c.Valuation = MergeValuation(loaded, c.Valuation)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Cache.AnalysisTTL != "" {
		if _, err := time.ParseDuration(c.Cache.AnalysisTTL); err != nil {
			return fmt.Errorf("cache.analysis_ttl invalid: %w", err)
		}
	}
	for borough, r := range c.Valuation.Boroughs {
		if borough < 1 || borough > 5 {
			return fmt.Errorf("valuation.boroughs: borough %d out of range 1..5", borough)
		}
		if r.Residential < 0 || r.Commercial < 0 || r.CommunityFac < 0 || r.Parking < 0 {
			return fmt.Errorf("valuation.boroughs[%d]: rates must be >= 0", borough)
		}
	}
	return nil
}

// AnalysisTTL returns the parsed analysis-cache TTL.
func (c *Config) AnalysisTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.AnalysisTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

type valuationFileWrapper struct {
	Valuation ValuationConfig `yaml:"valuation"`
}

func loadValuationFile(path string) (ValuationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ValuationConfig{}, err
	}
	var w valuationFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ValuationConfig{}, err
	}
	return w.Valuation, nil
}

// MergeValuation overlays non-zero rate fields from override onto base,
// borough by borough.
func MergeValuation(base, override ValuationConfig) ValuationConfig {
	if len(override.Boroughs) == 0 {
		return base
	}
	out := ValuationConfig{Boroughs: map[int]RateConfig{}}
	for b, r := range base.Boroughs {
		out.Boroughs[b] = r
	}
	for b, o := range override.Boroughs {
		merged := out.Boroughs[b]
		if o.Residential != 0 {
			merged.Residential = o.Residential
		}
		if o.Commercial != 0 {
			merged.Commercial = o.Commercial
		}
		if o.CommunityFac != 0 {
			merged.CommunityFac = o.CommunityFac
		}
		if o.Parking != 0 {
			merged.Parking = o.Parking
		}
		out.Boroughs[b] = merged
	}
	return out
}
