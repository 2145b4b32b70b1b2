package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Server.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", c.Server.Addr)
	}
	if !c.Cache.Enabled || c.Cache.AnalysisTTL != "1h" {
		t.Errorf("default cache = %+v", c.Cache)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
pluto:
  app_token: abc123
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":8080" {
		t.Errorf("addr = %q, want defaulted :8080", c.Server.Addr)
	}
	if c.Cache.AnalysisTTL != "1h" {
		t.Errorf("TTL = %q, want defaulted 1h", c.Cache.AnalysisTTL)
	}
	if c.Pluto.AppToken != "abc123" {
		t.Errorf("app token = %q", c.Pluto.AppToken)
	}
}

func TestLoadInvalidTTL(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
cache:
  analysis_ttl: not-a-duration
`)
	if _, err := Load(path); err == nil {
		t.Fatal("invalid TTL should fail validation")
	}
}

func TestLoadBoroughRange(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
valuation:
  boroughs:
    7:
      residential: 900
`)
	if _, err := Load(path); err == nil {
		t.Fatal("borough 7 should fail validation")
	}
}

func TestLoadNegativeRate(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
valuation:
  boroughs:
    3:
      residential: -100
`)
	if _, err := Load(path); err == nil {
		t.Fatal("negative rate should fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadValuationFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rates.yaml", `
valuation:
  boroughs:
    3:
      residential: 1100
      commercial: 650
`)
	path := writeFile(t, dir, "config.yaml", `
valuation_file: rates.yaml
valuation:
  boroughs:
    3:
      residential: 1200
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b3 := c.Valuation.Boroughs[3]
	// Inline overrides win over the rates file; untouched fields keep
	// the file's value.
	if b3.Residential != 1200 {
		t.Errorf("residential = %v, want inline 1200", b3.Residential)
	}
	if b3.Commercial != 650 {
		t.Errorf("commercial = %v, want 650 from rates file", b3.Commercial)
	}
}

func TestMergeValuation(t *testing.T) {
	base := ValuationConfig{Boroughs: map[int]RateConfig{
		1: {Residential: 1500, Commercial: 800},
		3: {Residential: 1000},
	}}
	override := ValuationConfig{Boroughs: map[int]RateConfig{
		3: {Commercial: 700},
	}}
	out := MergeValuation(base, override)
	if out.Boroughs[3].Residential != 1000 || out.Boroughs[3].Commercial != 700 {
		t.Errorf("borough 3 = %+v", out.Boroughs[3])
	}
	if out.Boroughs[1].Residential != 1500 {
		t.Errorf("borough 1 should pass through: %+v", out.Boroughs[1])
	}

	// Empty override returns base unchanged.
	same := MergeValuation(base, ValuationConfig{})
	if same.Boroughs[1] != base.Boroughs[1] {
		t.Errorf("empty override changed the base")
	}
}

func TestAnalysisTTL(t *testing.T) {
	c := &Config{Cache: CacheConfig{AnalysisTTL: "30m"}}
	if got := c.AnalysisTTL(); got != 30*time.Minute {
		t.Errorf("AnalysisTTL = %v, want 30m", got)
	}
	c = &Config{}
	if got := c.AnalysisTTL(); got != time.Hour {
		t.Errorf("unset TTL = %v, want 1h fallback", got)
	}
}
