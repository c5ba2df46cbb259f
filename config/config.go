// Package config holds the run-wide settings. Values are layered by viper:
// defaults, then an optional config file, then GENE_SCOUT_* environment
// variables, then command line flags (bound in cmd).
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"gene_scout_go/markov_model"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment variable viper reads.
const EnvPrefix = "GENE_SCOUT"

// Config is the root-level settings struct.
type Config struct {
	// Markov order
	K int `mapstructure:"k"`

	// additive smoothing constant, must be > 0
	Pseudocount float64 `mapstructure:"pseudocount"`

	// candidates longer than this train the model
	LongLen int `mapstructure:"long-len"`

	// candidates shorter than this form the short band
	ShortLen int `mapstructure:"short-len"`

	// goroutines for counting and scoring, <= 0 means one per CPU
	Workers int `mapstructure:"workers"`

	InFile string `mapstructure:"in-file"`
	Out    string `mapstructure:"out"`
	Format string `mapstructure:"format"`

	// evaluation settings
	Annotation     string  `mapstructure:"annotation"`
	Ratio          float64 `mapstructure:"ratio"`
	PlotDir        string  `mapstructure:"plot-dir"`
	TargetAccuracy float64 `mapstructure:"target-accuracy"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("k", 5)
	v.SetDefault("pseudocount", 1.0)
	v.SetDefault("long-len", 1400)
	v.SetDefault("short-len", 50)
	v.SetDefault("workers", 1)
	v.SetDefault("format", "tsv")
	v.SetDefault("ratio", 0.2)
	v.SetDefault("target-accuracy", 0.8)
}

// New returns a viper instance with defaults and environment lookup wired.
// When file is not empty it is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects settings the model cannot work with.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Format {
	case "tsv", "json":
	default:
		return fmt.Errorf("%w: format must be tsv or json, got %q", ErrInvalidConfig, c.Format)
	}
	if !(c.Ratio > 0 && c.Ratio < 1) {
		return fmt.Errorf("%w: ratio must be in (0, 1), got %v", ErrInvalidConfig, c.Ratio)
	}
	if !(c.TargetAccuracy > 0 && c.TargetAccuracy <= 1) {
		return fmt.Errorf("%w: target accuracy must be in (0, 1], got %v", ErrInvalidConfig, c.TargetAccuracy)
	}
	return nil
}

// Params copies the model settings out of the config.
func (c Config) Params() markov_model.Params {
	return markov_model.Params{
		K:           c.K,
		Pseudocount: c.Pseudocount,
		LongLen:     c.LongLen,
		ShortLen:    c.ShortLen,
		Workers:     c.Workers,
	}
}

// EffectiveWorkers resolves Workers <= 0 to the CPU count.
func (c Config) EffectiveWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
