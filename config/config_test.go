package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_defaults(t *testing.T) {
	v, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.K != 5 || c.Pseudocount != 1 || c.LongLen != 1400 || c.ShortLen != 50 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Format != "tsv" || c.Ratio != 0.2 || c.TargetAccuracy != 0.8 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "k: 3\npseudocount: 0.5\nlong-len: 800\nformat: json\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.K != 3 || c.Pseudocount != 0.5 || c.LongLen != 800 || c.Format != "json" {
		t.Errorf("file settings not applied: %+v", c)
	}
	if c.ShortLen != 50 {
		t.Errorf("default lost: short-len = %d", c.ShortLen)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("GENE_SCOUT_SHORT_LEN", "70")
	v, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.ShortLen != 70 {
		t.Errorf("short-len = %d, want 70", c.ShortLen)
	}
}

func TestNew_missingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{K: 5, Pseudocount: 1, LongLen: 1400, ShortLen: 50, Format: "tsv", Ratio: 0.2, TargetAccuracy: 0.8}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"k", func(c *Config) { c.K = 0 }},
		{"pseudocount", func(c *Config) { c.Pseudocount = 0 }},
		{"long-len", func(c *Config) { c.LongLen = -1 }},
		{"short-len", func(c *Config) { c.ShortLen = 0 }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"ratio", func(c *Config) { c.Ratio = 1 }},
		{"target accuracy", func(c *Config) { c.TargetAccuracy = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Params(t *testing.T) {
	c := Config{K: 4, Pseudocount: 2, LongLen: 10, ShortLen: 3, Workers: 0}
	p := c.Params()
	if p.K != 4 || p.Pseudocount != 2 || p.LongLen != 10 || p.ShortLen != 3 {
		t.Errorf("Params() = %+v", p)
	}
	if c.EffectiveWorkers() < 1 {
		t.Errorf("EffectiveWorkers() = %d", c.EffectiveWorkers())
	}
}
